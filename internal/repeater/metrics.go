package repeater

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpt2ogd77_records_total",
		Help: "The number of registry records read (per filter result).",
	}, []string{"result"})
)

func recordCounter(result string) prometheus.Counter {
	return rc.With(prometheus.Labels{"result": result})
}
