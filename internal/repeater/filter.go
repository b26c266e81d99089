package repeater

import (
	"strings"
	"unicode/utf8"
)

// Registry values the filter matches on.
const (
	TypeRepeater = "Repeater"
	StatusQRV    = "QRV"
	ModeDMR      = "DMR"
	ModeFM       = "FM"
	Band2m       = "2"
	Band70cm     = "70"
)

// Eligible returns true when the record describes an active 2m or 70cm
// repeater in a single-digit district, operating in DMR and / or FM mode.
func Eligible(r Record) bool {
	if utf8.RuneCountInString(r.District) != 1 {
		return false
	}

	if !strings.Contains(r.Type, TypeRepeater) || !strings.Contains(r.Status, StatusQRV) {
		return false
	}

	if !strings.Contains(r.Mode, ModeDMR) && !strings.Contains(r.Mode, ModeFM) {
		return false
	}

	return r.Band == Band2m || r.Band == Band70cm
}

// Filter returns the eligible records, in source order.
func Filter(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if Eligible(r) {
			recordCounter("eligible").Inc()
			out = append(out, r)
			continue
		}
		recordCounter("skipped").Inc()
	}
	return out
}
