//go:build !windows
// +build !windows

package cmd

import (
	"log/syslog"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
)

func TestSyslogPriority(t *testing.T) {
	tests := []struct {
		level    log.Level
		expected syslog.Priority
	}{
		{log.TraceLevel, syslog.LOG_USER | syslog.LOG_DEBUG},
		{log.DebugLevel, syslog.LOG_USER | syslog.LOG_DEBUG},
		{log.InfoLevel, syslog.LOG_USER | syslog.LOG_INFO},
		{log.WarnLevel, syslog.LOG_USER | syslog.LOG_WARNING},
		{log.ErrorLevel, syslog.LOG_USER | syslog.LOG_ERR},
		{log.FatalLevel, syslog.LOG_USER | syslog.LOG_CRIT},
		{log.PanicLevel, syslog.LOG_USER | syslog.LOG_CRIT},
	}

	for _, tst := range tests {
		t.Run(tst.level.String(), func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tst.expected, syslogPriority(tst.level))
		})
	}
}

func TestSetSyslogDisabled(t *testing.T) {
	assert := require.New(t)

	config.C.General.LogToSyslog = false
	hooks := len(log.StandardLogger().Hooks[log.InfoLevel])

	assert.NoError(setSyslog())
	assert.Len(log.StandardLogger().Hooks[log.InfoLevel], hooks)
}
