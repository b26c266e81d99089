package naming

import (
	"strings"
	"unicode"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
)

// Strategy defines a single name rewrite step.
type Strategy interface {
	// ID returns the strategy identifier.
	ID() string

	// Applies returns true when the strategy can rewrite the given name.
	Applies(name []rune) bool

	// Apply returns the rewritten name.
	Apply(name []rune, t channel.Type) []rune

	// Lossy returns true when the rewrite drops information from the name.
	Lossy() bool
}

// Strategies holds the rewrite strategies in the order they are tried.
var Strategies = []Strategy{
	StripBand{},
	AppendModeTag{},
	AppendModeLetter{},
	Substitute{From: ' ', To: '_'},
	Substitute{From: '_', To: '.'},
	Substitute{From: '.', To: '-'},
	Substitute{From: '-', To: '/'},
	Shorten{},
}

// ModeTag returns the mode tag for the given channel type.
func ModeTag(t channel.Type) string {
	if t == channel.TypeDigital {
		return "DMR"
	}
	return "FM"
}

// ModeLetter returns the single character mode indicator for the given
// channel type.
func ModeLetter(t channel.Type) rune {
	if t == channel.TypeDigital {
		return 'D'
	}
	return 'A'
}

// StripBand removes the trailing band token ("2m", "70cm" or what is left of
// it after truncation).
type StripBand struct{}

// ID implements Strategy.
func (StripBand) ID() string { return "strip_band" }

// Applies implements Strategy.
func (StripBand) Applies(name []rune) bool {
	if strings.Contains(string(name), " 7") {
		return true
	}
	return len(name) > 10 && strings.Contains(string(name[10:]), " 2")
}

// Apply implements Strategy.
func (StripBand) Apply(name []rune, t channel.Type) []rune {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == ' ' {
			return name[:i]
		}
	}
	return name
}

// Lossy implements Strategy.
func (StripBand) Lossy() bool { return false }

// AppendModeTag appends " DMR" or " FM" when at least two characters are
// available.
type AppendModeTag struct{}

// ID implements Strategy.
func (AppendModeTag) ID() string { return "append_mode_tag" }

// Applies implements Strategy.
func (AppendModeTag) Applies(name []rune) bool {
	return len(name) < channel.MaxNameLength-1
}

// Apply implements Strategy.
func (AppendModeTag) Apply(name []rune, t channel.Type) []rune {
	out := append(append([]rune{}, name...), []rune(" "+ModeTag(t))...)
	if len(out) > channel.MaxNameLength {
		out = out[:channel.MaxNameLength]
	}
	return out
}

// Lossy implements Strategy.
func (AppendModeTag) Lossy() bool { return false }

// AppendModeLetter appends "D" or "A" to a name one character short of the
// max. length.
type AppendModeLetter struct{}

// ID implements Strategy.
func (AppendModeLetter) ID() string { return "append_mode_letter" }

// Applies implements Strategy.
func (AppendModeLetter) Applies(name []rune) bool {
	return len(name) < channel.MaxNameLength
}

// Apply implements Strategy.
func (AppendModeLetter) Apply(name []rune, t channel.Type) []rune {
	return append(append([]rune{}, name...), ModeLetter(t))
}

// Lossy implements Strategy.
func (AppendModeLetter) Lossy() bool { return false }

// Substitute replaces the first From character by To.
type Substitute struct {
	From rune
	To   rune
}

// ID implements Strategy.
func (s Substitute) ID() string {
	return "substitute_" + substituteName(s.From) + "_" + substituteName(s.To)
}

// Applies implements Strategy.
func (s Substitute) Applies(name []rune) bool {
	for _, r := range name {
		if r == s.From {
			return true
		}
	}
	return false
}

// Apply implements Strategy.
func (s Substitute) Apply(name []rune, t channel.Type) []rune {
	out := append([]rune{}, name...)
	for i, r := range out {
		if r == s.From {
			out[i] = s.To
			break
		}
	}
	return out
}

// Lossy implements Strategy.
func (Substitute) Lossy() bool { return false }

func substituteName(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '_':
		return "underscore"
	case '.':
		return "period"
	case '-':
		return "hyphen"
	case '/':
		return "slash"
	default:
		return string(r)
	}
}

// Shorten drops the last two characters. This is the last resort and always
// applies.
type Shorten struct{}

// ID implements Strategy.
func (Shorten) ID() string { return "shorten" }

// Applies implements Strategy.
func (Shorten) Applies(name []rune) bool { return true }

// Apply implements Strategy.
func (Shorten) Apply(name []rune, t channel.Type) []rune {
	if len(name) > 2 {
		name = name[:len(name)-2]
	} else {
		name = nil
	}
	return []rune(strings.TrimRightFunc(string(name), unicode.IsSpace))
}

// Lossy implements Strategy.
func (Shorten) Lossy() bool { return true }
