// Package channel implements the OpenGD77 channel model and its derivation
// from repeater registry records.
package channel

import (
	"strings"
	"unicode"
)

// MaxNameLength defines the max. number of characters in a channel name.
const MaxNameLength = 16

// Type defines the channel type.
type Type string

// Channel types. The string values are used as primary sort key and as the
// "Channel Type" column value.
const (
	TypeAnalogue Type = "Analogue"
	TypeDigital  Type = "Digital"
)

// Mode holds the mode specific channel attributes. It is implemented by
// Digital and Analogue.
type Mode interface {
	Type() Type
	isMode()
}

// DigitalAccess holds the DMR access parameters.
type DigitalAccess struct {
	ColourCode string
	Timeslot   int
	TGList     string
	DMRID      string
	TS1TATx    string
	TS2TATx    string
}

// Digital holds the DMR channel attributes. Access is nil when the registry
// did not provide a colour code.
type Digital struct {
	Access *DigitalAccess
}

// Type implements Mode.
func (Digital) Type() Type { return TypeDigital }

func (Digital) isMode() {}

// Analogue holds the FM channel attributes.
type Analogue struct {
	Bandwidth string
	RXTone    string
	TXTone    string
	Squelch   string
}

// Type implements Mode.
func (Analogue) Type() Type { return TypeAnalogue }

func (Analogue) isMode() {}

// Flags holds the operational channel flags.
type Flags struct {
	Power    string
	RxOnly   bool
	ZoneSkip bool
	AllSkip  bool
	TOT      int
	VOX      bool
	NoBeep   bool
	NoEco    bool
	APRS     string
}

// Channel defines a channel derived from a repeater record.
type Channel struct {
	// Number is assigned by the registry on finalize.
	Number int
	Name   string

	// District is the authoritative district numeral of the repeater.
	District int

	RxFrequency Frequency
	TxFrequency Frequency
	Mode        Mode
	Flags       Flags

	// Latitude and Longitude use a decimal comma.
	Latitude  string
	Longitude string
}

// Type returns the channel type.
func (c Channel) Type() Type {
	return c.Mode.Type()
}

// TruncateName returns the first MaxNameLength characters of the given name
// with surrounding whitespace removed.
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) > MaxNameLength {
		r = r[:MaxNameLength]
	}
	return strings.TrimFunc(string(r), unicode.IsSpace)
}
