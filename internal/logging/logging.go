// Package logging provides the logrus hooks used during a conversion run.
package logging

import (
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RunIDField holds the log field name of the run id.
const RunIDField = "run_id"

// RunIDHook adds the run id to every log entry.
type RunIDHook struct {
	ID uuid.UUID
}

// NewRunIDHook creates a RunIDHook with a random run id.
func NewRunIDHook() (*RunIDHook, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "new uuid error")
	}
	return &RunIDHook{ID: id}, nil
}

// Levels implements log.Hook.
func (h *RunIDHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire implements log.Hook.
func (h *RunIDHook) Fire(e *log.Entry) error {
	e.Data[RunIDField] = h.ID.String()
	return nil
}

// Warning holds a collected warning.
type Warning struct {
	Level   string            `yaml:"level"`
	Message string            `yaml:"message"`
	Fields  map[string]string `yaml:"fields,omitempty"`
}

// WarningCollector collects all warning (and worse) log entries, so that
// they can be included in the run report.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Levels implements log.Hook.
func (c *WarningCollector) Levels() []log.Level {
	return []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel}
}

// Fire implements log.Hook.
func (c *WarningCollector) Fire(e *log.Entry) error {
	w := Warning{
		Level:   e.Level.String(),
		Message: e.Message,
	}

	for k, v := range e.Data {
		if k == RunIDField {
			continue
		}
		if w.Fields == nil {
			w.Fields = make(map[string]string)
		}
		w.Fields[k] = fieldString(v)
	}

	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()

	return nil
}

// Warnings returns the collected warnings.
func (c *WarningCollector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Count returns the number of collected warnings.
func (c *WarningCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

func fieldString(v interface{}) string {
	switch v := v.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
