// Package depspec exposes the dependency-spec data model: declarative,
// validated descriptions of the named columns a model consumes and produces.
//
// This package wraps the internal implementation and exports the public API.
//
// Example usage:
//
//	x, err := depspec.NewLeaf([]string{"age", "income"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := depspec.NewLeaf([]string{"spend"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	all, err := depspec.NewComposite([]depspec.Spec{x, y}, nil)
package depspec

import (
	"github.com/OlleLindgren/model-persistence/internal/depspec"
)

// Spec is the interface shared by the two dependency-spec variants.
type Spec = depspec.Spec

// Leaf is a flat spec: a sorted set of unique dependency names plus metadata.
type Leaf = depspec.Leaf

// Composite is a nested spec: a non-empty ordered sequence of child specs.
type Composite = depspec.Composite

// Error types.
type (
	ValidationError   = depspec.ValidationError
	ShapeError        = depspec.ShapeError
	DisjointnessError = depspec.DisjointnessError
)

// Common errors.
var (
	ErrNotFound   = depspec.ErrNotFound
	ErrEmptySpec  = depspec.ErrEmptySpec
	ErrEmptyTree  = depspec.ErrEmptyTree
	ErrOutOfRange = depspec.ErrOutOfRange
)

// NewLeaf creates a Leaf from dependency names and metadata.
func NewLeaf(names []string, meta map[string]any) (*Leaf, error) {
	return depspec.NewLeaf(names, meta)
}

// NewComposite creates a Composite from child specs and metadata.
func NewComposite(children []Spec, meta map[string]any) (*Composite, error) {
	return depspec.NewComposite(children, meta)
}

// FromValue reconstructs a Spec from its canonical JSON-compatible form.
func FromValue(v any) (Spec, error) { return depspec.FromValue(v) }

// Decode reconstructs a Spec from canonical JSON text.
func Decode(data []byte) (Spec, error) { return depspec.Decode(data) }

// Encode renders a Spec as pretty-printed canonical JSON text.
func Encode(s Spec) ([]byte, error) { return depspec.Encode(s) }

// Load reads a canonical JSON spec file from path.
func Load(path string) (Spec, error) { return depspec.Load(path) }
