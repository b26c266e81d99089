// Package zone groups the emitted channels into the OpenGD77 zones.
//
// Zone membership is derived from the Channels.csv fields only (channel
// name, channel type and rx frequency), never from the in-memory channels.
package zone

import (
	"fmt"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
	"github.com/rpt2ogd77/rpt2ogd77/internal/cps"
)

// DefaultCapacity is the number of channels a zone can hold.
const DefaultCapacity = cps.ZoneSlots

// Cross district zones.
const (
	All2mDMR   = "All 2m DMR"
	All70cmDMR = "All 70cm DMR"
)

// Zone holds a named list of channel names.
type Zone struct {
	Name     string
	Channels []string
}

// CatalogNames returns the zone names in emission order.
func CatalogNames() []string {
	out := []string{All2mDMR, All70cmDMR}
	for _, d := range channel.Districts {
		out = append(out,
			AllChannelsName(d),
			modeZoneName(fmt.Sprint(d), ModeLabel(channel.TypeAnalogue)),
			modeZoneName(fmt.Sprint(d), ModeLabel(channel.TypeDigital)),
		)
	}
	return out
}

// AllChannelsName returns the name of the zone holding all channels of the
// given district.
func AllChannelsName(district int) string {
	return allChannelsName(fmt.Sprint(district))
}

// ModeLabel returns the zone label for the given channel type.
func ModeLabel(t channel.Type) string {
	if t == channel.TypeDigital {
		return "DMR"
	}
	return "Analogue"
}

func allChannelsName(district string) string {
	return fmt.Sprintf("SM%s All Channels", district)
}

func modeZoneName(district, mode string) string {
	return fmt.Sprintf("SM%s %s", district, mode)
}

// Bucketer assigns channels to the zones of the catalog.
type Bucketer struct {
	capacity int
	zones    []*Zone
	index    map[string]*Zone
}

// NewBucketer creates a Bucketer with all catalog zones. Zones growing
// beyond capacity are logged, but not truncated. A capacity outside
// 1..DefaultCapacity is replaced by DefaultCapacity, as Zones.csv has no
// columns for more channels.
func NewBucketer(capacity int) *Bucketer {
	if capacity <= 0 || capacity > DefaultCapacity {
		capacity = DefaultCapacity
	}

	b := Bucketer{
		capacity: capacity,
		index:    make(map[string]*Zone),
	}

	for _, name := range CatalogNames() {
		z := Zone{Name: name}
		b.zones = append(b.zones, &z)
		b.index[name] = &z
	}

	return &b
}

// AddAll adds all given rows.
func (b *Bucketer) AddAll(rows []cps.ChannelRow) {
	for _, r := range rows {
		b.Add(r)
	}
}

// Add adds the channel to its district zones and, for DMR channels, to the
// cross district band zone. Channels without district numeral in their name
// are not added to any zone.
func (b *Bucketer) Add(row cps.ChannelRow) {
	name := strings.TrimSpace(row.Name())

	dr, ok := channel.DistrictRune(name)
	if !ok || !unicode.IsNumber(dr) {
		excludedCounter().Inc()
		return
	}
	district := string(dr)

	mode := ModeLabel(channel.TypeAnalogue)
	if strings.Contains(row.Get(cps.ColChannelType), string(channel.TypeDigital)) {
		mode = ModeLabel(channel.TypeDigital)
	}

	modeZone := modeZoneName(district, mode)
	if _, ok := b.index[modeZone]; !ok {
		log.WithFields(log.Fields{
			"name":     name,
			"district": district,
		}).Warning("zone: no zones for district")
		excludedCounter().Inc()
		return
	}

	b.append(modeZone, name)
	b.append(allChannelsName(district), name)

	if mode == ModeLabel(channel.TypeDigital) {
		rx := row.Get(cps.ColRxFrequency)
		switch {
		case strings.HasPrefix(rx, "1"):
			b.append(All2mDMR, name)
		case strings.HasPrefix(rx, "4"):
			b.append(All70cmDMR, name)
		}
	}
}

func (b *Bucketer) append(zone, name string) {
	z := b.index[zone]
	z.Channels = append(z.Channels, name)

	if len(z.Channels) > b.capacity {
		log.WithFields(log.Fields{
			"zone":     z.Name,
			"channels": len(z.Channels),
			"capacity": b.capacity,
		}).Warning("zone: zone has more entries than it can hold")
		capacityWarningCounter(z.Name).Inc()
	}
}

// Zones returns the non-empty zones in catalog order.
func (b *Bucketer) Zones() []Zone {
	var out []Zone
	for _, z := range b.zones {
		if len(z.Channels) == 0 {
			continue
		}
		out = append(out, Zone{
			Name:     z.Name,
			Channels: append([]string{}, z.Channels...),
		})
	}
	return out
}

// Rows returns the non-empty zones as Zones.csv rows.
func (b *Bucketer) Rows() []cps.ZoneRow {
	var out []cps.ZoneRow
	for _, z := range b.Zones() {
		out = append(out, cps.ZoneRow{Name: z.Name, Channels: z.Channels})
	}
	return out
}
