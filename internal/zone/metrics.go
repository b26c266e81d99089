package zone

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	zcw = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpt2ogd77_zone_capacity_warnings_total",
		Help: "The number of channels added beyond the zone capacity (per zone).",
	}, []string{"zone"})
	zex = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpt2ogd77_zone_excluded_channel_count",
		Help: "The number of channels not assigned to any zone.",
	})
)

func capacityWarningCounter(zone string) prometheus.Counter {
	return zcw.With(prometheus.Labels{"zone": zone})
}

func excludedCounter() prometheus.Counter {
	return zex
}
