// Package registry collects the uniquely named channels, merges the custom
// (pre-numbered) channels and assigns the channel numbers.
package registry

import (
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
	"github.com/rpt2ogd77/rpt2ogd77/internal/cps"
	"github.com/rpt2ogd77/rpt2ogd77/internal/naming"
)

// NumberBase is the channel number offset of the generated channels. Custom
// channels must use numbers below this offset.
const NumberBase = 500

// errors
var (
	ErrAlreadyExists = errors.New("channel name already exists")
)

// Registry holds the generated and custom channels.
type Registry struct {
	channels []channel.Channel
	external []cps.ChannelRow
	names    naming.MapSet
}

// New creates a new, empty Registry.
func New() *Registry {
	return &Registry{
		names: make(naming.MapSet),
	}
}

// Contains implements naming.Set. It covers both generated and custom
// channel names.
func (r *Registry) Contains(name string) bool {
	return r.names.Contains(name)
}

// Len returns the number of generated channels.
func (r *Registry) Len() int {
	return len(r.channels)
}

// Register adds the given channel. Its name must be unique (see
// naming.Resolve).
func (r *Registry) Register(ch channel.Channel) error {
	if r.names.Contains(ch.Name) {
		return errors.Wrapf(ErrAlreadyExists, "%q", ch.Name)
	}

	r.names.Add(ch.Name)
	r.channels = append(r.channels, ch)
	return nil
}

// MergeExternal adds the given custom channel rows. Names are truncated to
// channel.MaxNameLength characters, all other fields are kept as-is.
func (r *Registry) MergeExternal(rows []cps.ChannelRow) error {
	for _, row := range rows {
		n, err := row.Number()
		if err != nil {
			return errors.Wrapf(err, "custom channel %q", row.Name())
		}

		out := append(cps.ChannelRow{}, row...)
		out[cps.ColChannelName] = channel.TruncateName(row.Name())
		name := out.Name()

		if n >= NumberBase {
			log.WithFields(log.Fields{
				"name":   name,
				"number": n,
			}).Warning("registry: channel number of custom channel is 500 or greater")
			externalNumberWarningCounter().Inc()
		}

		if r.names.Contains(name) {
			log.WithField("name", name).Warning("registry: duplicate custom channel name")
		}

		r.names.Add(name)
		r.external = append(r.external, out)
	}

	return nil
}

// Finalize sorts the generated channels by type, district numeral in the
// name and rx frequency, numbers them starting at NumberBase+1 and returns
// all rows: custom channels first (in their original order), followed by
// the generated channels.
func (r *Registry) Finalize() []cps.ChannelRow {
	sorted := make([]channel.Channel, len(r.channels))
	copy(sorted, r.channels)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Type() != b.Type() {
			return a.Type() < b.Type()
		}

		da, _ := channel.DistrictRune(a.Name)
		db, _ := channel.DistrictRune(b.Name)
		if da != db {
			return da < db
		}

		return a.RxFrequency.Cmp(b.RxFrequency) < 0
	})

	out := make([]cps.ChannelRow, 0, len(r.external)+len(sorted))
	for _, row := range r.external {
		out = append(out, append(cps.ChannelRow{}, row...))
	}
	for i := range sorted {
		sorted[i].Number = NumberBase + i + 1
		out = append(out, cps.FromChannel(sorted[i]))
	}

	return out
}
