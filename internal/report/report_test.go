package report

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rpt2ogd77/rpt2ogd77/internal/logging"
)

func TestNewArtifact(t *testing.T) {
	assert := require.New(t)

	a := NewArtifact("Zones.csv", []byte("Zone Name\r\n"))
	assert.Equal("Zones.csv", a.Path)
	assert.Equal(11, a.Bytes)
	assert.Equal("11 B", a.Size)
	assert.Len(a.XXH3, 16)

	assert.Equal(a, NewArtifact("Zones.csv", []byte("Zone Name\r\n")))
	assert.NotEqual(a.XXH3, NewArtifact("Zones.csv", []byte("Zone Name\n")).XXH3)
}

func TestWrite(t *testing.T) {
	assert := require.New(t)

	var r Report
	r.RunID = "0f0e5c4e-7d3b-4f5e-9a3c-1b2d3e4f5a6b"
	r.Started = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.Finished = r.Started.Add(time.Second)
	r.Input = "repeaters.csv"
	r.Records.Read = 10
	r.Records.Eligible = 4
	r.Channels.Generated = 4
	r.Zones = []Zone{{Name: "SM3 All Channels", Channels: 4}}
	r.Warnings = []logging.Warning{{
		Level:   "warning",
		Message: "naming: forced to shorten name",
		Fields:  map[string]string{"name": "ABCDEFGH/IJKLMNO"},
	}}

	path := filepath.Join(t.TempDir(), "report.yml")
	assert.NoError(Write(path, r))

	b, err := ioutil.ReadFile(path)
	assert.NoError(err)

	var out Report
	assert.NoError(yaml.Unmarshal(b, &out))
	assert.Equal(r, out)
}
