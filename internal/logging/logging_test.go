package logging

import (
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestHooks(t *testing.T) {
	assert := require.New(t)

	logger := log.New()
	logger.SetOutput(ioutil.Discard)

	runID, err := NewRunIDHook()
	assert.NoError(err)

	var collector WarningCollector
	logger.AddHook(runID)
	logger.AddHook(&collector)

	logger.WithField("name", "SK7AB Lund 2m").Info("not collected")
	logger.WithFields(log.Fields{
		"zone":     "SM7 All Channels",
		"channels": 81,
	}).Warning("zone: zone has more entries than it can hold")
	logger.WithError(errors.New("boom")).Error("failed")

	assert.Equal(2, collector.Count())
	assert.Equal([]Warning{
		{
			Level:   "warning",
			Message: "zone: zone has more entries than it can hold",
			Fields: map[string]string{
				"zone":     "SM7 All Channels",
				"channels": "81",
			},
		},
		{
			Level:   "error",
			Message: "failed",
			Fields:  map[string]string{"error": "boom"},
		},
	}, collector.Warnings())
}
