package depspec

import (
	"fmt"
	"strings"
)

// Composite is a nested dependency spec: a non-empty ordered sequence of child
// specs plus its own metadata mapping.
//
// The flattened dependency names of the whole tree must be globally unique.
// Appends that would violate this are rejected, never silently deduplicated.
type Composite struct {
	children []Spec
	meta     map[string]any
}

// NewComposite creates a Composite from the given children and metadata.
//
// The children must be non-empty and non-nil, and the flattened dependencies
// of the whole tree must contain no duplicate name.
func NewComposite(children []Spec, meta map[string]any) (*Composite, error) {
	if len(children) == 0 {
		return nil, ErrEmptyTree
	}
	for i, child := range children {
		if child == nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("child %d is nil", i)}
		}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	c := &Composite{children: append([]Spec{}, children...), meta: meta}
	if dups := duplicates(c.Dependencies()); len(dups) > 0 {
		return nil, &ValidationError{Reason: "dependencies occur in more than one child", Names: dups}
	}
	return c, nil
}

// Children returns the composite's child specs in order.
// Callers must not mutate the returned slice.
func (c *Composite) Children() []Spec { return c.children }

// Dependencies returns the flattened, depth-first dependency names of all
// leaves under this composite. The returned slice is freshly allocated.
func (c *Composite) Dependencies() []string {
	var deps []string
	for _, child := range c.children {
		deps = append(deps, child.Dependencies()...)
	}
	return deps
}

// Len returns the number of flattened dependency names.
func (c *Composite) Len() int {
	n := 0
	for _, child := range c.children {
		n += child.Len()
	}
	return n
}

// Meta returns the composite's metadata mapping. The map is live, not a copy.
func (c *Composite) Meta() map[string]any { return c.meta }

// Get returns a singleton Leaf for the named dependency anywhere in the tree.
func (c *Composite) Get(name string) (*Leaf, error) { return getFrom(c, name) }

// At returns a singleton Leaf for the name at flattened position i.
func (c *Composite) At(i int) (*Leaf, error) { return atFrom(c, i) }

// Select returns a Leaf holding exactly the given names, re-sorted.
func (c *Composite) Select(names ...string) (*Leaf, error) { return selectFrom(c, names) }

// Append adds child to the end of the composite's children.
//
// Before committing, the flattened dependencies of the proposed tree are
// checked for global uniqueness; a child carrying any name already present
// anywhere in the tree is rejected with a DisjointnessError.
func (c *Composite) Append(child Spec) error {
	if child == nil {
		return &ValidationError{Reason: "appended child is nil"}
	}
	proposed := append(c.Dependencies(), child.Dependencies()...)
	if dups := duplicates(proposed); len(dups) > 0 {
		return &DisjointnessError{Duplicates: dups}
	}
	c.children = append(c.children, child)
	return nil
}

// String implements fmt.Stringer.
func (c *Composite) String() string {
	return fmt.Sprintf("Composite(%s)", strings.Join(c.Dependencies(), ", "))
}

func (c *Composite) isSpec() {}
