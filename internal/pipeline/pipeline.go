// Package pipeline runs the repeater registry to OpenGD77 CPS conversion.
package pipeline

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
	"github.com/rpt2ogd77/rpt2ogd77/internal/config"
	"github.com/rpt2ogd77/rpt2ogd77/internal/cps"
	"github.com/rpt2ogd77/rpt2ogd77/internal/naming"
	"github.com/rpt2ogd77/rpt2ogd77/internal/registry"
	"github.com/rpt2ogd77/rpt2ogd77/internal/repeater"
	"github.com/rpt2ogd77/rpt2ogd77/internal/report"
	"github.com/rpt2ogd77/rpt2ogd77/internal/zone"
)

// Output file names.
const (
	ChannelsFile = "Channels.csv"
	ZonesFile    = "Zones.csv"
)

// ErrNotADirectory is returned when the output path is not a directory.
var ErrNotADirectory = errors.New("output path is not a directory")

// Summary holds the result of a run.
type Summary struct {
	Records   int
	Eligible  int
	Custom    int
	Generated int
	Zones     []zone.Zone
	Artifacts []report.Artifact
}

// Run converts the configured registry into the Channels.csv and Zones.csv
// files. All input is read and validated before any output file is written.
func Run(c config.Config) (Summary, error) {
	var s Summary

	if err := c.Validate(); err != nil {
		return s, errors.Wrap(err, "validate config error")
	}

	if fi, err := os.Stat(c.Output.Path); err != nil {
		return s, errors.Wrap(err, "stat output path error")
	} else if !fi.IsDir() {
		return s, errors.Wrapf(ErrNotADirectory, "%q", c.Output.Path)
	}

	records, err := readRecords(c.Input.Filename, c.Input.Encoding)
	if err != nil {
		return s, err
	}
	s.Records = len(records)

	eligible := repeater.Filter(records)
	s.Eligible = len(eligible)

	reg := registry.New()

	if c.Output.Custom != "" {
		custom, err := readExternal(c.Output.Custom)
		if err != nil {
			return s, err
		}
		if err := reg.MergeExternal(custom); err != nil {
			return s, errors.Wrap(err, "merge custom channels error")
		}
		s.Custom = len(custom)
	}

	if err := buildChannels(reg, channel.NewDeriver(c.DeriverSettings()), eligible); err != nil {
		return s, err
	}
	s.Generated = reg.Len()

	log.WithFields(log.Fields{
		"records":   humanize.Comma(int64(s.Records)),
		"eligible":  humanize.Comma(int64(s.Eligible)),
		"custom":    s.Custom,
		"generated": s.Generated,
	}).Info("pipeline: channels derived")

	var buf bytes.Buffer
	if err := cps.WriteChannels(&buf, reg.Finalize()); err != nil {
		return s, errors.Wrap(err, "encode channels error")
	}
	channelsPath := filepath.Join(c.Output.Path, ChannelsFile)
	if err := writeFile(channelsPath, buf.Bytes()); err != nil {
		return s, err
	}
	s.Artifacts = append(s.Artifacts, artifact(channelsPath, buf.Bytes()))

	b := zone.NewBucketer(c.Zones.Capacity)

	emitted, err := readChannels(channelsPath)
	if err != nil {
		return s, err
	}
	b.AddAll(emitted)
	s.Zones = b.Zones()

	buf.Reset()
	if err := cps.WriteZones(&buf, b.Rows()); err != nil {
		return s, errors.Wrap(err, "encode zones error")
	}
	zonesPath := filepath.Join(c.Output.Path, ZonesFile)
	if err := writeFile(zonesPath, buf.Bytes()); err != nil {
		return s, err
	}
	s.Artifacts = append(s.Artifacts, artifact(zonesPath, buf.Bytes()))

	return s, nil
}

func buildChannels(reg *registry.Registry, d *channel.Deriver, records []repeater.Record) error {
	for _, r := range records {
		ch, err := d.Derive(r)
		if err != nil {
			return errors.Wrap(err, "derive channel error")
		}

		name, err := naming.Resolve(ch.Name, reg, ch.Type())
		if err != nil {
			return errors.Wrapf(err, "line %d", r.Line)
		}
		ch.Name = name

		if err := reg.Register(ch); err != nil {
			return errors.Wrap(err, "register channel error")
		}
	}

	return nil
}

func readRecords(path, encoding string) ([]repeater.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input file error")
	}
	defer f.Close()

	records, err := repeater.Read(f, encoding)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s error", path)
	}
	return records, nil
}

func readExternal(path string) ([]cps.ChannelRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open custom channels file error")
	}
	defer f.Close()

	rows, err := cps.ReadExternal(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s error", path)
	}
	return rows, nil
}

func readChannels(path string) ([]cps.ChannelRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open channels file error")
	}
	defer f.Close()

	rows, err := cps.ReadChannels(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s error", path)
	}
	return rows, nil
}

// writeFile writes to a temporary file in the same directory, which is then
// renamed to path.
func writeFile(path string, data []byte) error {
	f, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temporary file error")
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "write file error")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "close file error")
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "chmod file error")
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "rename file error")
	}

	return nil
}

func artifact(path string, data []byte) report.Artifact {
	a := report.NewArtifact(path, data)
	log.WithFields(log.Fields{
		"path": a.Path,
		"size": a.Size,
		"xxh3": a.XXH3,
	}).Info("pipeline: file written")
	return a
}
