// Package container bundles a trained model with its dependency specs and
// evaluation metadata into a restorable directory artifact.
//
// This package wraps the internal implementation and exports the public API.
//
// Example usage:
//
//	c, err := container.New(model, xSpec, ySpec, elapsed, map[string]float64{"acc": 0.9})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Save("artifacts/churn-model", backend.Default()); err != nil {
//	    log.Fatal(err)
//	}
package container

import (
	"time"

	"github.com/OlleLindgren/model-persistence/internal/backend"
	"github.com/OlleLindgren/model-persistence/internal/container"
	"github.com/OlleLindgren/model-persistence/internal/depspec"
)

// Filenames inside a saved container directory.
const (
	ModelFilename  = container.ModelFilename
	XSpecFilename  = container.XSpecFilename
	YSpecFilename  = container.YSpecFilename
	ExtrasFilename = container.ExtrasFilename
)

// Estimator is the capability set a contained model must expose.
type Estimator = container.Estimator

// Container binds a trained model to its column specs and evaluation metadata.
type Container = container.Container

// Extras is the sidecar metadata stored next to the model.
type Extras = container.Extras

// Timedelta is a training duration decomposed into integer components.
type Timedelta = container.Timedelta

// MissingFileError reports a container directory missing an expected file.
type MissingFileError = container.MissingFileError

// Common errors.
var (
	ErrNilModel = container.ErrNilModel
	ErrNilSpec  = container.ErrNilSpec
)

// New creates a container.
func New(model Estimator, xSpec, ySpec depspec.Spec, elapsed time.Duration, evalMetrics map[string]float64) (*Container, error) {
	return container.New(model, xSpec, ySpec, elapsed, evalMetrics)
}

// Load reads a container from a directory previously written by Save.
func Load(path string, reg *backend.Registry) (*Container, error) {
	return container.Load(path, reg)
}

// ReadExtras reads the extras file from a container directory without
// touching the model file.
func ReadExtras(dir string) (*Extras, error) { return container.ReadExtras(dir) }

// NewTimedelta decomposes a duration into day, second, and microsecond
// components.
func NewTimedelta(d time.Duration) Timedelta { return container.NewTimedelta(d) }
