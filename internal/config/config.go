package config

import (
	"github.com/pkg/errors"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
	"github.com/rpt2ogd77/rpt2ogd77/internal/cps"
)

// Version defines the rpt2ogd77 version.
var Version string

// NoDistrict marks an unset home district.
const NoDistrict = channel.NoDistrict

// errors
var (
	ErrInvalidDistrict = errors.New("invalid district number")
	ErrHomeAndSkip     = errors.New("home and allskip districts are mutually exclusive")
	ErrNoInput         = errors.New("input filename is required")
	ErrInvalidCapacity = errors.New("invalid zone capacity")
)

// Abbreviation defines a city name substitution.
type Abbreviation struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel    int  `mapstructure:"log_level"`
		LogToSyslog bool `mapstructure:"log_to_syslog"`
	} `mapstructure:"general"`

	Input struct {
		Filename string `mapstructure:"filename"`
		Encoding string `mapstructure:"encoding"`
	} `mapstructure:"input"`

	Output struct {
		Path        string `mapstructure:"path"`
		Custom      string `mapstructure:"custom"`
		MetricsFile string `mapstructure:"metrics_file"`
		ReportFile  string `mapstructure:"report_file"`
	} `mapstructure:"output"`

	Skip struct {
		Home      int   `mapstructure:"home"`
		Districts []int `mapstructure:"districts"`
	} `mapstructure:"skip"`

	Naming struct {
		CityAbbreviations []Abbreviation `mapstructure:"city_abbreviations"`
		NetworkAliases    []string       `mapstructure:"network_aliases"`
	} `mapstructure:"naming"`

	Zones struct {
		Capacity int `mapstructure:"capacity"`
	} `mapstructure:"zones"`
}

// C holds the global configuration.
var C Config

// Defaults returns a configuration with the default values set. It matches
// the defaults registered with viper by the cli.
func Defaults() Config {
	var c Config
	c.General.LogLevel = 4
	c.Input.Encoding = "utf-8"
	c.Output.Path = "."
	c.Skip.Home = NoDistrict
	c.Naming.CityAbbreviations = []Abbreviation{{From: "Upplands ", To: "U."}}
	c.Naming.NetworkAliases = []string{"BM", "Brandmeister"}
	c.Zones.Capacity = cps.ZoneSlots
	return c
}

// HasHome returns true when a home district is configured.
func (c Config) HasHome() bool {
	return c.Skip.Home != NoDistrict
}

// Validate validates the district arguments. It must be called before any
// output is produced.
func (c Config) Validate() error {
	if c.Input.Filename == "" {
		return ErrNoInput
	}

	// Zones.csv has ZoneSlots channel columns, the capacity can only lower
	// the warning threshold. Zero selects ZoneSlots.
	if c.Zones.Capacity < 0 || c.Zones.Capacity > cps.ZoneSlots {
		return errors.Wrapf(ErrInvalidCapacity, "%d, must be between 1 and %d", c.Zones.Capacity, cps.ZoneSlots)
	}

	for _, d := range c.Skip.Districts {
		if !channel.ValidDistrict(d) {
			return errors.Wrapf(ErrInvalidDistrict, "%d in allskip", d)
		}
	}

	if c.HasHome() {
		if len(c.Skip.Districts) != 0 {
			return ErrHomeAndSkip
		}
		if !channel.ValidDistrict(c.Skip.Home) {
			return errors.Wrapf(ErrInvalidDistrict, "%d in home", c.Skip.Home)
		}
	}

	return nil
}

// DeriverSettings returns the channel derivation settings for this
// configuration.
func (c Config) DeriverSettings() channel.Settings {
	s := channel.Settings{
		HomeDistrict:   c.Skip.Home,
		SkipDistricts:  c.Skip.Districts,
		NetworkAliases: c.Naming.NetworkAliases,
	}
	for _, a := range c.Naming.CityAbbreviations {
		s.CityAbbreviations = append(s.CityAbbreviations, channel.Abbreviation{From: a.From, To: a.To})
	}
	return s
}
