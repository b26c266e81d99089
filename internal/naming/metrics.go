package naming

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nr = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpt2ogd77_name_rewrites_total",
		Help: "The number of channel name rewrites (per strategy).",
	}, []string{"strategy"})
)

func rewriteCounter(strategy string) prometheus.Counter {
	return nr.With(prometheus.Labels{"strategy": strategy})
}
