package backend

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLBackend serializes models as YAML, for pipelines that keep model
// parameters human-editable. Like JSONBackend it needs a factory to
// reconstruct the concrete type on load.
type YAMLBackend struct {
	factory func() any
}

// NewYAMLBackend creates a YAML backend. The factory may be nil for
// save-only use; loading without a factory fails.
func NewYAMLBackend(factory func() any) *YAMLBackend {
	return &YAMLBackend{factory: factory}
}

// Name implements Backend.
func (*YAMLBackend) Name() string { return "yaml" }

// Save implements Backend.
func (*YAMLBackend) Save(model any, path string) error {
	data, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	return nil
}

// Load implements Backend.
func (b *YAMLBackend) Load(path string) (any, error) {
	if b.factory == nil {
		return nil, errors.New("yaml backend has no model factory")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	model := b.factory()
	if err := yaml.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	return model, nil
}
