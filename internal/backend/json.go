package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// JSONBackend serializes models as pretty-printed JSON.
//
// JSON carries no type information, so loading needs a factory that returns
// a pointer to a fresh instance of the concrete model type to decode into.
type JSONBackend struct {
	factory func() any
}

// NewJSONBackend creates a JSON backend. The factory may be nil for
// save-only use; loading without a factory fails.
func NewJSONBackend(factory func() any) *JSONBackend {
	return &JSONBackend{factory: factory}
}

// Name implements Backend.
func (*JSONBackend) Name() string { return "json" }

// Save implements Backend.
func (*JSONBackend) Save(model any, path string) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	return nil
}

// Load implements Backend.
func (b *JSONBackend) Load(path string) (any, error) {
	if b.factory == nil {
		return nil, errors.New("json backend has no model factory")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	model := b.factory()
	if err := json.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	return model, nil
}
