// Package backend provides the pluggable model serialization strategies used
// by model containers.
//
// A Backend knows how to write an opaque model value to a file and read it
// back. Backends are collected in an explicitly ordered Registry; save and
// load both walk the registered order and stop at the first backend that
// succeeds. No global backend state exists; registries are built where they
// are used and passed in.
package backend

import (
	"errors"
	"fmt"
)

// ErrNoBackends is returned when a registry has no registered backends.
var ErrNoBackends = errors.New("no backends registered")

// Backend serializes and deserializes an opaque model value.
type Backend interface {
	// Name identifies the backend in error messages.
	Name() string

	// Save writes model to path.
	Save(model any, path string) error

	// Load reads a model from path. A nil model without error is treated as
	// a failure by the registry.
	Load(path string) (any, error)
}

// ExhaustedError reports that every registered backend failed.
//
// Last holds the error from the last backend tried, preserved for
// debuggability instead of a generic failure message.
type ExhaustedError struct {
	Op   string // "save" or "load"
	Last error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all backends failed to %s model: last error: %v", e.Op, e.Last)
}

// Unwrap exposes the last backend error for errors.Is/As matching.
func (e *ExhaustedError) Unwrap() error { return e.Last }

// Registry is an ordered list of backends tried in registration order.
type Registry struct {
	backends []Backend
}

// NewRegistry creates a registry with the given backends, tried in the order
// given.
func NewRegistry(backends ...Backend) *Registry {
	return &Registry{backends: backends}
}

// Default returns the registry used when callers have no special
// serialization needs: the gob backend only. Model types must be registered
// with encoding/gob before saving.
func Default() *Registry {
	return NewRegistry(NewGobBackend())
}

// Register appends a backend to the end of the try order.
func (r *Registry) Register(b Backend) {
	r.backends = append(r.backends, b)
}

// Save writes model to path using the first backend that succeeds.
//
// Later backends are not tried once one succeeds. If every backend fails,
// the returned ExhaustedError wraps the last backend's error.
func (r *Registry) Save(model any, path string) error {
	if len(r.backends) == 0 {
		return &ExhaustedError{Op: "save", Last: ErrNoBackends}
	}
	var last error
	for _, b := range r.backends {
		if err := b.Save(model, path); err != nil {
			last = fmt.Errorf("%s: %w", b.Name(), err)
			continue
		}
		return nil
	}
	return &ExhaustedError{Op: "save", Last: last}
}

// Load reads a model from path using the first backend that returns a
// non-nil model without error.
//
// If every backend fails, the returned ExhaustedError wraps the last
// backend's error.
func (r *Registry) Load(path string) (any, error) {
	if len(r.backends) == 0 {
		return nil, &ExhaustedError{Op: "load", Last: ErrNoBackends}
	}
	var last error
	for _, b := range r.backends {
		model, err := b.Load(path)
		if err != nil {
			last = fmt.Errorf("%s: %w", b.Name(), err)
			continue
		}
		if model == nil {
			last = fmt.Errorf("%s: backend returned no model", b.Name())
			continue
		}
		return model, nil
	}
	return nil, &ExhaustedError{Op: "load", Last: last}
}
