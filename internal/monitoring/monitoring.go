// Package monitoring exports the run metrics in the Prometheus text format,
// to be picked up by the node_exporter textfile collector.
package monitoring

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

var (
	channels = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rpt2ogd77_channels",
		Help: "The number of emitted channels (per origin).",
	}, []string{"origin"})
	zones = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rpt2ogd77_zones",
		Help: "The number of emitted (non-empty) zones.",
	})
	warnings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rpt2ogd77_warnings",
		Help: "The number of warnings logged during the last run.",
	})
	lastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rpt2ogd77_last_run_timestamp_seconds",
		Help: "The unix timestamp of the last successful run.",
	})
	runDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rpt2ogd77_last_run_duration_seconds",
		Help: "The duration of the last successful run.",
	})
)

// RunStats holds the stats of a completed run.
type RunStats struct {
	Started   time.Time
	Finished  time.Time
	Custom    int
	Generated int
	Zones     int
	Warnings  int
}

// Record sets the run gauges.
func Record(s RunStats) {
	channels.With(prometheus.Labels{"origin": "custom"}).Set(float64(s.Custom))
	channels.With(prometheus.Labels{"origin": "generated"}).Set(float64(s.Generated))
	zones.Set(float64(s.Zones))
	warnings.Set(float64(s.Warnings))
	lastRun.Set(float64(s.Finished.Unix()))
	runDuration.Set(s.Finished.Sub(s.Started).Seconds())
}

// WriteTextfile writes all registered metrics to the given file. Nothing is
// written when path is empty.
func WriteTextfile(path string) error {
	return writeTextfile(path, prometheus.DefaultGatherer)
}

func writeTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}

	log.WithFields(log.Fields{
		"path": path,
	}).Info("monitoring: writing metrics textfile")

	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Wrap(err, "write metrics textfile error")
	}
	return nil
}
