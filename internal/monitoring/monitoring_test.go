package monitoring

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	assert := require.New(t)

	start := time.Unix(1700000000, 0)
	Record(RunStats{
		Started:   start,
		Finished:  start.Add(1500 * time.Millisecond),
		Custom:    3,
		Generated: 120,
		Zones:     14,
		Warnings:  2,
	})

	assert.Equal(float64(3), testutil.ToFloat64(channels.With(prometheus.Labels{"origin": "custom"})))
	assert.Equal(float64(120), testutil.ToFloat64(channels.With(prometheus.Labels{"origin": "generated"})))
	assert.Equal(float64(14), testutil.ToFloat64(zones))
	assert.Equal(float64(2), testutil.ToFloat64(warnings))
	assert.Equal(float64(1700000001), testutil.ToFloat64(lastRun))
	assert.Equal(1.5, testutil.ToFloat64(runDuration))
}

func TestWriteTextfile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		assert := require.New(t)
		assert.NoError(WriteTextfile(""))
	})

	t.Run("registry", func(t *testing.T) {
		assert := require.New(t)

		reg := prometheus.NewRegistry()
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rpt2ogd77_test_count",
			Help: "Test counter.",
		})
		reg.MustRegister(c)
		c.Add(3)

		path := filepath.Join(t.TempDir(), "rpt2ogd77.prom")
		assert.NoError(writeTextfile(path, reg))

		b, err := ioutil.ReadFile(path)
		assert.NoError(err)
		assert.Contains(string(b), "rpt2ogd77_test_count 3")
	})
}
