package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enw = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpt2ogd77_custom_channel_number_warning_count",
		Help: "The number of custom channels using a number reserved for generated channels.",
	})
)

func externalNumberWarningCounter() prometheus.Counter {
	return enw
}
