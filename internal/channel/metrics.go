package channel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dw = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpt2ogd77_name_district_warning_count",
		Help: "The number of derived channel names without a valid district numeral.",
	})
)

func districtWarningCounter() prometheus.Counter {
	return dw
}
