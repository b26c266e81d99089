package repeater

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	valid := Record{
		District: "3",
		Type:     "Repeater",
		Status:   "QRV",
		Mode:     "FM",
		Band:     "2",
	}

	tests := []struct {
		name     string
		modify   func(r *Record)
		expected bool
	}{
		{"valid fm repeater", func(r *Record) {}, true},
		{"dmr and fm", func(r *Record) { r.Mode = "DMR, FM" }, true},
		{"70cm band", func(r *Record) { r.Band = "70" }, true},
		{"type with suffix", func(r *Record) { r.Type = "Repeater (linked)" }, true},
		{"two digit district", func(r *Record) { r.District = "10" }, false},
		{"empty district", func(r *Record) { r.District = "" }, false},
		{"beacon", func(r *Record) { r.Type = "Beacon" }, false},
		{"not on air", func(r *Record) { r.Status = "QRT" }, false},
		{"d-star only", func(r *Record) { r.Mode = "D-STAR" }, false},
		{"6m band", func(r *Record) { r.Band = "6" }, false},
		{"23cm band", func(r *Record) { r.Band = "23" }, false},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)
			r := valid
			tst.modify(&r)
			assert.Equal(tst.expected, Eligible(r))
		})
	}
}

func TestFilter(t *testing.T) {
	assert := require.New(t)

	records := []Record{
		{Line: 2, District: "3", Type: "Repeater", Status: "QRV", Mode: "FM", Band: "2"},
		{Line: 3, District: "3", Type: "Repeater", Status: "QRT", Mode: "FM", Band: "2"},
		{Line: 4, District: "7", Type: "Repeater", Status: "QRV", Mode: "DMR", Band: "70"},
	}

	out := Filter(records)
	assert.Len(out, 2)
	assert.Equal(2, out[0].Line)
	assert.Equal(4, out[1].Line)
}
