//go:build !windows
// +build !windows

package cmd

import (
	"log/syslog"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	lsyslog "github.com/sirupsen/logrus/hooks/syslog"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
)

const syslogTag = "rpt2ogd77"

func setSyslog() error {
	if !config.C.General.LogToSyslog {
		return nil
	}

	hook, err := lsyslog.NewSyslogHook("", "", syslogPriority(log.GetLevel()), syslogTag)
	if err != nil {
		return errors.Wrap(err, "get syslog hook error")
	}

	log.AddHook(hook)
	log.WithField("priority", syslogPriority(log.GetLevel())).Debug("logging to syslog")

	return nil
}

// syslogPriority returns the user facility priority for the given log level.
// Trace maps to debug, fatal and panic map to critical.
func syslogPriority(l log.Level) syslog.Priority {
	switch {
	case l >= log.DebugLevel:
		return syslog.LOG_USER | syslog.LOG_DEBUG
	case l == log.InfoLevel:
		return syslog.LOG_USER | syslog.LOG_INFO
	case l == log.WarnLevel:
		return syslog.LOG_USER | syslog.LOG_WARNING
	case l == log.ErrorLevel:
		return syslog.LOG_USER | syslog.LOG_ERR
	default:
		return syslog.LOG_USER | syslog.LOG_CRIT
	}
}
