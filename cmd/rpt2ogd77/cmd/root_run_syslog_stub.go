//go:build windows
// +build windows

package cmd

import (
	"github.com/pkg/errors"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
)

// ErrSyslogUnsupported is returned when syslog output is enabled on Windows.
var ErrSyslogUnsupported = errors.New("syslog logging is not supported on Windows")

func setSyslog() error {
	if config.C.General.LogToSyslog {
		return errors.Wrap(ErrSyslogUnsupported, "general.log_to_syslog")
	}
	return nil
}
