// Package backend exposes the pluggable model-serialization strategies used
// by model containers.
//
// This package wraps the internal implementation and exports the public API.
//
// Example usage:
//
//	reg := backend.NewRegistry(
//	    backend.NewGobBackend(),
//	    backend.NewJSONBackend(func() any { return &MyModel{} }),
//	)
package backend

import (
	"github.com/OlleLindgren/model-persistence/internal/backend"
)

// Backend serializes and deserializes an opaque model value.
type Backend = backend.Backend

// Registry is an ordered list of backends tried in registration order.
type Registry = backend.Registry

// ExhaustedError reports that every registered backend failed.
type ExhaustedError = backend.ExhaustedError

// Concrete backends.
type (
	GobBackend  = backend.GobBackend
	JSONBackend = backend.JSONBackend
	YAMLBackend = backend.YAMLBackend
)

// ErrNoBackends is returned when a registry has no registered backends.
var ErrNoBackends = backend.ErrNoBackends

// NewRegistry creates a registry with the given backends, tried in order.
func NewRegistry(backends ...Backend) *Registry { return backend.NewRegistry(backends...) }

// Default returns the default registry: the gob backend only.
func Default() *Registry { return backend.Default() }

// NewGobBackend creates a gob backend.
func NewGobBackend() *GobBackend { return backend.NewGobBackend() }

// NewJSONBackend creates a JSON backend with an optional model factory.
func NewJSONBackend(factory func() any) *JSONBackend { return backend.NewJSONBackend(factory) }

// NewYAMLBackend creates a YAML backend with an optional model factory.
func NewYAMLBackend(factory func() any) *YAMLBackend { return backend.NewYAMLBackend(factory) }
