// Package container bundles a trained model with its dependency specs and
// evaluation metadata into a restorable directory artifact.
//
// A saved container directory holds four files:
//
//	<root>/
//	  model            backend-defined opaque format
//	  X_spec.json      canonical input spec
//	  y_spec.json      canonical output spec
//	  extras.json      eval metrics, training duration, save date
//
// Saving overwrites an existing directory at the target path without asking.
// The four files are written into a temporary sibling directory that is
// renamed into place on success, so a crash mid-save never leaves a partial
// container behind.
package container

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OlleLindgren/model-persistence/internal/backend"
	"github.com/OlleLindgren/model-persistence/internal/depspec"
)

// Filenames inside a saved container directory.
const (
	ModelFilename  = "model"
	XSpecFilename  = "X_spec.json"
	YSpecFilename  = "y_spec.json"
	ExtrasFilename = "extras.json"
)

// Estimator is the capability set a contained model must expose.
type Estimator interface {
	// Fit trains the model on feature rows X and targets y.
	Fit(X, y [][]float64) error

	// Predict returns one prediction per feature row.
	Predict(X [][]float64) ([]float64, error)
}

// Container binds a trained model to the specs of the columns it consumes
// and produces, plus evaluation metrics and the elapsed training duration.
type Container struct {
	Model       Estimator
	XSpec       depspec.Spec
	YSpec       depspec.Spec
	Elapsed     time.Duration
	EvalMetrics map[string]float64
}

// New creates a container.
//
// The model and both specs are required. A nil evalMetrics is replaced with
// an empty map.
func New(model Estimator, xSpec, ySpec depspec.Spec, elapsed time.Duration, evalMetrics map[string]float64) (*Container, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if xSpec == nil || ySpec == nil {
		return nil, ErrNilSpec
	}
	if evalMetrics == nil {
		evalMetrics = map[string]float64{}
	}
	return &Container{
		Model:       model,
		XSpec:       xSpec,
		YSpec:       ySpec,
		Elapsed:     elapsed,
		EvalMetrics: evalMetrics,
	}, nil
}

// Save writes the container to a directory at path, creating parent
// directories as needed and replacing any existing contents at path.
//
// The model file is delegated to the registry; the specs and extras are
// written as canonical JSON. All four files land in a temporary sibling
// directory first and the directory is renamed into place on success.
func (c *Container) Save(path string, reg *backend.Registry) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	staging, err := os.MkdirTemp(parent, filepath.Base(path)+".saving-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := reg.Save(c.Model, filepath.Join(staging, ModelFilename)); err != nil {
		return err
	}
	if err := c.XSpec.Save(filepath.Join(staging, XSpecFilename)); err != nil {
		return err
	}
	if err := c.YSpec.Save(filepath.Join(staging, YSpecFilename)); err != nil {
		return err
	}

	extras := &Extras{
		EvalMetrics:   c.EvalMetrics,
		DT:            NewTimedelta(c.Elapsed),
		SaveTimestamp: time.Now().Format(dateFormat),
	}
	if err := writeExtras(extras, filepath.Join(staging, ExtrasFilename)); err != nil {
		return err
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to replace existing directory: %w", err)
	}
	if err := os.Rename(staging, path); err != nil {
		return fmt.Errorf("failed to move container into place: %w", err)
	}
	return nil
}

// Load reads a container from a directory previously written by Save.
//
// All four expected files are checked for existence up front; the first
// absent one is reported as a MissingFileError before any reconstruction is
// attempted. The model handle is whatever the registry's load path returns;
// it must implement Estimator.
func Load(path string, reg *backend.Registry) (*Container, error) {
	for _, name := range []string{ModelFilename, XSpecFilename, YSpecFilename, ExtrasFilename} {
		if _, err := os.Stat(filepath.Join(path, name)); err != nil {
			return nil, &MissingFileError{Dir: path, File: name}
		}
	}

	model, err := reg.Load(filepath.Join(path, ModelFilename))
	if err != nil {
		return nil, err
	}
	estimator, ok := model.(Estimator)
	if !ok {
		return nil, fmt.Errorf("%w: loaded model is %T", ErrNilModel, model)
	}

	xSpec, err := depspec.Load(filepath.Join(path, XSpecFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to load X spec: %w", err)
	}
	ySpec, err := depspec.Load(filepath.Join(path, YSpecFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to load y spec: %w", err)
	}

	extras, err := ReadExtras(path)
	if err != nil {
		return nil, err
	}

	return New(estimator, xSpec, ySpec, extras.DT.Duration(), extras.EvalMetrics)
}
