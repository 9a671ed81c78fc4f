package depspec

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrNotFound   = errors.New("dependency not found")
	ErrEmptySpec  = errors.New("spec must declare at least one dependency")
	ErrEmptyTree  = errors.New("composite must have at least one child")
	ErrOutOfRange = errors.New("dependency index out of range")
)

// ValidationError reports an invalid spec construction.
type ValidationError struct {
	Reason string   // Rule that was violated
	Names  []string // Offending dependency names, if any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Names) > 0 {
		return fmt.Sprintf("invalid spec: %s: %s", e.Reason, strings.Join(e.Names, ", "))
	}
	return fmt.Sprintf("invalid spec: %s", e.Reason)
}

// ShapeError reports an on-disk structure that cannot be decoded as a spec node,
// either because its discriminant keys are ambiguous or because a value has the
// wrong type.
type ShapeError struct {
	Details string // What made the structure undecodable
	Value   any    // The offending structure
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("undecodable spec node: %s: %v", e.Details, e.Value)
}

// DisjointnessError reports an append that would duplicate dependency names
// already present elsewhere in the tree.
type DisjointnessError struct {
	Duplicates []string // Names that would occur more than once
}

// Error implements the error interface.
func (e *DisjointnessError) Error() string {
	return fmt.Sprintf("append would duplicate dependencies: %s", strings.Join(e.Duplicates, ", "))
}
