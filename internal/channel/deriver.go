package channel

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/rpt2ogd77/rpt2ogd77/internal/repeater"
)

// CanonicalNetwork is the TG list name used for all networks matching one of
// the configured network aliases.
const CanonicalNetwork = "Brandmeister"

// Fixed channel attribute values.
const (
	analogueBandwidth = "12.5"
	squelchDisabled   = "Disabled"
	dmrIDNone         = "None"
	talkerAliasOff    = "Off"
	powerMaster       = "Master"
	aprsNone          = "None"
	defaultTimeslot   = 1
)

// errors
var (
	ErrInvalidDistrict  = errors.New("invalid district field")
	ErrInvalidFrequency = errors.New("invalid output frequency")
)

var (
	shiftPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
	tonePattern  = regexp.MustCompile(`[0-9]+\.[0-9]`)
)

// Abbreviation defines a city name substitution.
type Abbreviation struct {
	From string
	To   string
}

// Settings holds the channel derivation settings.
type Settings struct {
	// HomeDistrict sets the All Skip flag on all channels outside this
	// district. NoDistrict disables it.
	HomeDistrict int

	// SkipDistricts sets the All Skip flag on all channels in these districts.
	SkipDistricts []int

	CityAbbreviations []Abbreviation

	// NetworkAliases are matched against the network field, a match selects
	// CanonicalNetwork as TG list.
	NetworkAliases []string
}

// Deriver derives channels from repeater records.
type Deriver struct {
	settings Settings
}

// NewDeriver creates a new Deriver.
func NewDeriver(s Settings) *Deriver {
	return &Deriver{settings: s}
}

// Derive derives a channel from the given (eligible) record. The returned
// channel carries the proposed name, which might not be unique yet.
func (d *Deriver) Derive(r repeater.Record) (Channel, error) {
	var ch Channel

	ch.Name = ProposedName(r, d.settings.CityAbbreviations)

	if nd, ok := NameDistrict(ch.Name); !ok || !ValidDistrict(nd) {
		dr, _ := DistrictRune(ch.Name)
		log.WithFields(log.Fields{
			"line":     r.Line,
			"name":     ch.Name,
			"district": string(dr),
		}).Warning("channel: district number in name is not valid")
		districtWarningCounter().Inc()
	}

	district, err := strconv.Atoi(r.District)
	if err != nil {
		return ch, errors.Wrapf(ErrInvalidDistrict, "line %d: %q", r.Line, r.District)
	}
	ch.District = district

	ch.RxFrequency, err = ParseFrequency(r.Output)
	if err != nil {
		return ch, errors.Wrapf(ErrInvalidFrequency, "line %d: %q", r.Line, r.Output)
	}
	ch.TxFrequency = ch.RxFrequency.Add(parseShift(r.TxShift))

	if strings.Contains(r.Mode, repeater.ModeDMR) {
		ch.Mode = Digital{Access: d.digitalAccess(r)}
	} else {
		tone := tonePattern.FindString(r.Access)
		ch.Mode = Analogue{
			Bandwidth: analogueBandwidth,
			RXTone:    tone,
			TXTone:    tone,
			Squelch:   squelchDisabled,
		}
	}

	ch.Flags = Flags{
		Power:   powerMaster,
		AllSkip: d.allSkip(district),
		APRS:    aprsNone,
	}

	ch.Latitude = strings.ReplaceAll(r.Lat, ".", ",")
	ch.Longitude = strings.ReplaceAll(r.Lng, ".", ",")

	return ch, nil
}

func (d *Deriver) digitalAccess(r repeater.Record) *DigitalAccess {
	cc, ok := colourCode(r.Access)
	if !ok {
		return nil
	}

	return &DigitalAccess{
		ColourCode: cc,
		Timeslot:   defaultTimeslot,
		TGList:     d.tgList(r.Network),
		DMRID:      dmrIDNone,
		TS1TATx:    talkerAliasOff,
		TS2TATx:    talkerAliasOff,
	}
}

func (d *Deriver) tgList(network string) string {
	for _, alias := range d.settings.NetworkAliases {
		if alias != "" && strings.Contains(network, alias) {
			return CanonicalNetwork
		}
	}
	return network
}

func (d *Deriver) allSkip(district int) bool {
	if d.settings.HomeDistrict != NoDistrict && district != d.settings.HomeDistrict {
		return true
	}
	for _, s := range d.settings.SkipDistricts {
		if s == district {
			return true
		}
	}
	return false
}

// ProposedName composes the channel name from callsign, city and band. The
// name is truncated to MaxNameLength characters.
func ProposedName(r repeater.Record, abbreviations []Abbreviation) string {
	return TruncateName(normalizeCallsign(r.Call) + " " + normalizeCity(r.City, abbreviations) + " " + bandLabel(r.Band))
}

func normalizeCallsign(call string) string {
	call = strings.ReplaceAll(call, "Ø", "0")
	if i := strings.Index(call, "/"); i != -1 {
		call = call[:i]
	}
	if i := strings.Index(call, "-"); i != -1 {
		call = call[:i]
	}
	return call
}

func normalizeCity(city string, abbreviations []Abbreviation) string {
	city = strings.TrimSpace(city)
	if i := strings.Index(city, " /"); i != -1 {
		city = city[:i]
	}
	for _, a := range abbreviations {
		if a.From == "" {
			continue
		}
		city = strings.ReplaceAll(city, a.From, a.To)
	}
	return city
}

func bandLabel(band string) string {
	if strings.Contains(band, "2") {
		return "2m"
	}
	return "70cm"
}

// parseShift returns the transmit shift, or zero when the field is not a
// plain decimal number.
func parseShift(s string) decimal.Decimal {
	if !shiftPattern.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// colourCode reads the two characters following "CC" and a separator
// (e.g. "CC:01" or "CC 12").
func colourCode(access string) (string, bool) {
	i := strings.Index(access, "CC")
	if i == -1 {
		return "", false
	}

	r := []rune(access)
	start := utf8.RuneCountInString(access[:i]) + 3
	end := start + 2
	if start > len(r) {
		start = len(r)
	}
	if end > len(r) {
		end = len(r)
	}
	return string(r[start:end]), true
}
