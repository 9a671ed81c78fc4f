package backend

import (
	"encoding/gob"
	"fmt"
	"os"
)

// GobBackend serializes models with encoding/gob.
//
// Concrete model types must be registered with gob.Register before saving so
// the interface value can be decoded on load.
type GobBackend struct{}

// NewGobBackend creates a gob backend.
func NewGobBackend() *GobBackend { return &GobBackend{} }

// Name implements Backend.
func (*GobBackend) Name() string { return "gob" }

// Save implements Backend.
func (*GobBackend) Save(model any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(&model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// Load implements Backend.
func (*GobBackend) Load(path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	var model any
	if err := gob.NewDecoder(file).Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	return model, nil
}
