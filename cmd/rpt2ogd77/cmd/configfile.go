package cmd

import (
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
)

const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}

# Log to syslog.
#
# When set to true, log messages are being written to syslog.
log_to_syslog={{ .General.LogToSyslog }}


# Repeater registry input.
[input]
# Encoding of the registry file.
#
# Valid options are: utf-8, latin1 (iso-8859-1) and windows-1252 (cp1252).
# A byte order mark at the start of the file overrides this setting.
encoding="{{ .Input.Encoding }}"


# Output settings.
[output]
# Directory to which Channels.csv and Zones.csv are written.
path="{{ .Output.Path }}"

# Custom channels (optional).
#
# Semicolon separated channel rows without header, in the Channels.csv column
# order. These channels are written before the generated channels and must
# use channel numbers below 500.
custom="{{ .Output.Custom }}"

# Metrics file (optional).
#
# When set, the run metrics are written to this file in the Prometheus text
# format (e.g. for the node_exporter textfile collector).
metrics_file="{{ .Output.MetricsFile }}"

# Run report (optional).
#
# When set, a YAML summary of the run (counts, zones, output checksums and
# warnings) is written to this file.
report_file="{{ .Output.ReportFile }}"


# All Skip settings.
#
# Note that home and districts can not be used at the same time.
[skip]
# Home district (0 - 7).
#
# All channels outside this district get the All Skip flag. Set to -1 to
# disable.
home={{ .Skip.Home }}

# Districts (0 - 7) for which all channels get the All Skip flag.
districts=[{{ range $index, $d := .Skip.Districts }}{{ if $index }}, {{ end }}{{ $d }}{{ end }}]


# Channel naming.
[naming]
# Network aliases.
#
# Channels with a network field containing one of these tokens get the
# Brandmeister TG list.
network_aliases=[{{ range $index, $a := .Naming.NetworkAliases }}{{ if $index }}, {{ end }}"{{ $a }}"{{ end }}]

  # City abbreviations.
  #
  # Each occurrence of from in the city name is replaced by to.
  # Example:
  # [[naming.city_abbreviations]]
  # from="Upplands "
  # to="U."
{{ range $index, $a := .Naming.CityAbbreviations }}
  [[naming.city_abbreviations]]
  from="{{ $a.From }}"
  to="{{ $a.To }}"
{{ end }}

# Zone settings.
[zones]
# Number of channels after which a zone is reported as full (1 - 80).
#
# Zones.csv has 80 channel columns, so this can only lower the limit. Zones
# with more channels are logged, but written in full.
capacity={{ .Zones.Capacity }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the rpt2ogd77 configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))
		err := t.Execute(os.Stdout, &config.C)
		if err != nil {
			return errors.Wrap(err, "execute config template error")
		}
		return nil
	},
}
