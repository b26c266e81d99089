package cmd

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
	"github.com/rpt2ogd77/rpt2ogd77/internal/repeater"
)

// envPrefix is prepended to the environment variable names.
const envPrefix = "RPT2OGD77"

var (
	cfgFile string
	version string
)

var rootCmd = &cobra.Command{
	Use:   "rpt2ogd77 [flags] <repeaters.csv>",
	Short: "Convert the SSA repeater list into OpenGD77 CPS files",
	Long: `rpt2ogd77 converts the SSA repeater registry (CSV) into the Channels.csv and
Zones.csv files that can be imported by the OpenGD77 CPS.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().Int("log-level", 4, "debug=5, info=4, warning=3, error=2, fatal=1, panic=0")

	rootCmd.Flags().String("custom", "", "file with custom channels, merged before the generated channels (optional)")
	rootCmd.Flags().StringP("output", "o", ".", "output directory for Channels.csv and Zones.csv")
	rootCmd.Flags().IntSlice("allskip", nil, "district for which all channels get the All Skip flag (repeatable)")
	rootCmd.Flags().Int("home", config.NoDistrict, "home district, all channels outside it get the All Skip flag")
	rootCmd.Flags().String("encoding", "utf-8", "input encoding ("+strings.Join(repeater.Encodings(), ", ")+")")
	rootCmd.Flags().String("metrics-file", "", "write the run metrics in Prometheus text format to this file (optional)")
	rootCmd.Flags().String("report", "", "write the YAML run report to this file (optional)")

	viper.BindPFlag("general.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.custom", rootCmd.Flags().Lookup("custom"))
	viper.BindPFlag("output.path", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("skip.districts", rootCmd.Flags().Lookup("allskip"))
	viper.BindPFlag("skip.home", rootCmd.Flags().Lookup("home"))
	viper.BindPFlag("input.encoding", rootCmd.Flags().Lookup("encoding"))
	viper.BindPFlag("output.metrics_file", rootCmd.Flags().Lookup("metrics-file"))
	viper.BindPFlag("output.report_file", rootCmd.Flags().Lookup("report"))

	// default values
	defaults := config.Defaults()
	viper.SetDefault("general.log_level", defaults.General.LogLevel)
	viper.SetDefault("general.log_to_syslog", defaults.General.LogToSyslog)
	viper.SetDefault("input.encoding", defaults.Input.Encoding)
	viper.SetDefault("output.path", defaults.Output.Path)
	viper.SetDefault("skip.home", defaults.Skip.Home)
	viper.SetDefault("naming.city_abbreviations", []map[string]interface{}{
		{"from": defaults.Naming.CityAbbreviations[0].From, "to": defaults.Naming.CityAbbreviations[0].To},
	})
	viper.SetDefault("naming.network_aliases", defaults.Naming.NetworkAliases)
	viper.SetDefault("zones.capacity", defaults.Zones.Capacity)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute executes the root command.
func Execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	config.Version = version

	if cfgFile != "" {
		b, err := ioutil.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("rpt2ogd77")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/rpt2ogd77")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				log.Debug("no configuration file found, using defaults")
			default:
				log.WithError(err).Fatal("read configuration file error")
			}
		}
	}

	viperBindEnvs(config.C)

	viperHooks := mapstructure.ComposeDecodeHookFunc(
		viperDecodeJSONSlice,
		mapstructure.StringToSliceHookFunc(","),
	)

	if err := viper.Unmarshal(&config.C, viper.DecodeHook(viperHooks)); err != nil {
		log.WithError(err).Fatal("unmarshal config error")
	}
}

// viperBindEnvs binds every config key to an environment variable, e.g.
// skip.home to RPT2OGD77_SKIP__HOME.
func viperBindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			tv = strings.ToLower(t.Name)
		}
		if tv == "-" {
			continue
		}

		switch v.Kind() {
		case reflect.Struct:
			viperBindEnvs(v.Interface(), append(parts, tv)...)
		default:
			// Bash doesn't allow env variable names with a dot so
			// bind the double underscore version.
			keyDot := strings.Join(append(parts, tv), ".")
			keyUnderscore := strings.Join(append(parts, tv), "__")
			viper.BindEnv(keyDot, envPrefix+"_"+strings.ToUpper(keyUnderscore))
		}
	}
}

// viperDecodeJSONSlice decodes a JSON list of objects given as string (e.g.
// by an environment variable) into a slice.
func viperDecodeJSONSlice(rf reflect.Kind, rt reflect.Kind, data interface{}) (interface{}, error) {
	// input must be a string and destination must be a slice
	if rf != reflect.String || rt != reflect.Slice {
		return data, nil
	}

	raw := data.(string)

	// this decoder expects a JSON list
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return data, nil
	}

	var out []map[string]interface{}
	err := json.Unmarshal([]byte(raw), &out)

	return out, err
}
