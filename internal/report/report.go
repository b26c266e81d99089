// Package report writes the YAML summary of a conversion run.
package report

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"

	"github.com/rpt2ogd77/rpt2ogd77/internal/logging"
)

// Artifact describes a written output file.
type Artifact struct {
	Path  string `yaml:"path"`
	Bytes int    `yaml:"bytes"`
	Size  string `yaml:"size"`
	XXH3  string `yaml:"xxh3"`
}

// NewArtifact returns the artifact description for the given file content.
func NewArtifact(path string, data []byte) Artifact {
	return Artifact{
		Path:  path,
		Bytes: len(data),
		Size:  humanize.Bytes(uint64(len(data))),
		XXH3:  fmt.Sprintf("%016x", xxh3.Hash(data)),
	}
}

// Zone holds the zone summary.
type Zone struct {
	Name     string `yaml:"name"`
	Channels int    `yaml:"channels"`
}

// Report holds the run summary.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Version  string    `yaml:"version,omitempty"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Input    string    `yaml:"input"`

	Records struct {
		Read     int `yaml:"read"`
		Eligible int `yaml:"eligible"`
	} `yaml:"records"`

	Channels struct {
		Custom    int `yaml:"custom"`
		Generated int `yaml:"generated"`
	} `yaml:"channels"`

	Zones     []Zone            `yaml:"zones,omitempty"`
	Artifacts []Artifact        `yaml:"artifacts,omitempty"`
	Warnings  []logging.Warning `yaml:"warnings,omitempty"`
}

// Write writes the report to the given path.
func Write(path string, r Report) error {
	b, err := yaml.Marshal(&r)
	if err != nil {
		return errors.Wrap(err, "marshal report error")
	}

	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "write report error")
	}

	return nil
}
