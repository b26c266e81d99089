package cps

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ZoneSlots defines the number of channel columns in Zones.csv.
const ZoneSlots = 80

// ZoneRow holds a single Zones.csv row.
type ZoneRow struct {
	Name     string
	Channels []string
}

// ZoneHeader returns the Zones.csv column names.
func ZoneHeader() []string {
	out := []string{"Zone Name"}
	for i := 1; i <= ZoneSlots; i++ {
		out = append(out, fmt.Sprintf("Channel%d", i))
	}
	return out
}

// WriteZones writes the header followed by the given zones. Each zone is
// padded with empty fields to ZoneSlots channels. Zones with more channels
// are written in full.
func WriteZones(w io.Writer, zones []ZoneRow) error {
	if err := writeRecord(w, ZoneHeader()); err != nil {
		return errors.Wrap(err, "write header error")
	}

	for _, z := range zones {
		record := append([]string{z.Name}, z.Channels...)
		for len(record) < ZoneSlots+1 {
			record = append(record, "")
		}
		if err := writeRecord(w, record); err != nil {
			return errors.Wrapf(err, "write zone %q error", z.Name)
		}
	}

	return nil
}
