package container

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// dateFormat is the date-only granularity of the save timestamp.
const dateFormat = "2006-01-02"

// Extras is the sidecar metadata stored next to the model: evaluation
// metrics, the elapsed training duration, and the save date.
type Extras struct {
	EvalMetrics   map[string]float64 `json:"eval_metrics"`
	DT            Timedelta          `json:"dt"`
	SaveTimestamp string             `json:"save_timestamp"`
}

// Timedelta is a training duration decomposed into integer components, which
// round-trips exactly where a floating-point seconds value would drift.
type Timedelta struct {
	Days         int `json:"days"`
	Seconds      int `json:"seconds"`
	Microseconds int `json:"microseconds"`
}

// NewTimedelta decomposes a duration into day, second, and microsecond
// components.
func NewTimedelta(d time.Duration) Timedelta {
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	seconds := d / time.Second
	d -= seconds * time.Second
	return Timedelta{
		Days:         int(days),
		Seconds:      int(seconds),
		Microseconds: int(d / time.Microsecond),
	}
}

// Duration recomposes the components into a time.Duration.
func (td Timedelta) Duration() time.Duration {
	return time.Duration(td.Days)*24*time.Hour +
		time.Duration(td.Seconds)*time.Second +
		time.Duration(td.Microseconds)*time.Microsecond
}

// ReadExtras reads the extras file from a container directory. This does not
// touch the model file, so tooling can inspect metrics without a backend.
func ReadExtras(dir string) (*Extras, error) {
	data, err := os.ReadFile(filepath.Join(dir, ExtrasFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to read extras: %w", err)
	}
	var extras Extras
	if err := json.Unmarshal(data, &extras); err != nil {
		return nil, fmt.Errorf("failed to decode extras: %w", err)
	}
	return &extras, nil
}

func writeExtras(extras *Extras, path string) error {
	data, err := json.MarshalIndent(extras, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode extras: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write extras: %w", err)
	}
	return nil
}
