package cmd

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
	"github.com/rpt2ogd77/rpt2ogd77/internal/logging"
	"github.com/rpt2ogd77/rpt2ogd77/internal/monitoring"
	"github.com/rpt2ogd77/rpt2ogd77/internal/pipeline"
	"github.com/rpt2ogd77/rpt2ogd77/internal/report"
)

// runState is shared by the tasks of a single run.
type runState struct {
	started   time.Time
	finished  time.Time
	runID     *logging.RunIDHook
	collector *logging.WarningCollector
	summary   pipeline.Summary
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		config.C.Input.Filename = args[0]
	}

	st := runState{
		started:   time.Now(),
		collector: &logging.WarningCollector{},
	}

	tasks := []func() error{
		setLogLevel,
		setSyslog,
		setLogHooks(&st),
		validateConfig,
		printStartMessage,
		runPipeline(&st),
		writeMetrics(&st),
		writeReport(&st),
	}

	for _, t := range tasks {
		if err := t(); err != nil {
			log.Fatal(err)
		}
	}

	return nil
}

func setLogLevel() error {
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
	return nil
}

func setLogHooks(st *runState) func() error {
	return func() error {
		hook, err := logging.NewRunIDHook()
		if err != nil {
			return errors.Wrap(err, "setup run id error")
		}
		st.runID = hook

		log.AddHook(st.runID)
		log.AddHook(st.collector)
		return nil
	}
}

func validateConfig() error {
	if err := config.C.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func printStartMessage() error {
	log.WithFields(log.Fields{
		"version":  version,
		"input":    config.C.Input.Filename,
		"encoding": config.C.Input.Encoding,
		"output":   config.C.Output.Path,
	}).Info("starting rpt2ogd77")
	return nil
}

func runPipeline(st *runState) func() error {
	return func() error {
		s, err := pipeline.Run(config.C)
		if err != nil {
			return errors.Wrap(err, "conversion error")
		}
		st.summary = s
		st.finished = time.Now()

		log.WithFields(log.Fields{
			"custom":    s.Custom,
			"generated": s.Generated,
			"zones":     len(s.Zones),
			"warnings":  st.collector.Count(),
			"duration":  st.finished.Sub(st.started),
		}).Info("conversion completed")
		return nil
	}
}

func writeMetrics(st *runState) func() error {
	return func() error {
		monitoring.Record(monitoring.RunStats{
			Started:   st.started,
			Finished:  st.finished,
			Custom:    st.summary.Custom,
			Generated: st.summary.Generated,
			Zones:     len(st.summary.Zones),
			Warnings:  st.collector.Count(),
		})

		if err := monitoring.WriteTextfile(config.C.Output.MetricsFile); err != nil {
			return errors.Wrap(err, "write metrics error")
		}
		return nil
	}
}

func writeReport(st *runState) func() error {
	return func() error {
		if config.C.Output.ReportFile == "" {
			return nil
		}

		r := report.Report{
			RunID:     st.runID.ID.String(),
			Version:   version,
			Started:   st.started,
			Finished:  st.finished,
			Input:     config.C.Input.Filename,
			Artifacts: st.summary.Artifacts,
			Warnings:  st.collector.Warnings(),
		}
		r.Records.Read = st.summary.Records
		r.Records.Eligible = st.summary.Eligible
		r.Channels.Custom = st.summary.Custom
		r.Channels.Generated = st.summary.Generated
		for _, z := range st.summary.Zones {
			r.Zones = append(r.Zones, report.Zone{Name: z.Name, Channels: len(z.Channels)})
		}

		if err := report.Write(config.C.Output.ReportFile, r); err != nil {
			return errors.Wrap(err, "write report error")
		}

		log.WithField("path", config.C.Output.ReportFile).Info("run report written")
		return nil
	}
}
