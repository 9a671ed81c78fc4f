package depspec

import (
	"fmt"
	"slices"
	"sort"
)

// Spec is the interface shared by the two dependency-spec variants.
//
// The interface is closed: only Leaf and Composite implement it. Consumers
// switch on the concrete type when variant-specific behavior is needed.
type Spec interface {
	// Dependencies returns the flattened, depth-first dependency names under
	// this node. For a Leaf this is its own sorted names; callers must not
	// mutate the returned slice.
	Dependencies() []string

	// Len returns the number of flattened dependency names.
	Len() int

	// Meta returns the node's metadata mapping. The map is live, not a copy.
	Meta() map[string]any

	// Get returns a singleton Leaf for the named dependency, or ErrNotFound
	// if the name is absent from the flattened dependencies.
	Get(name string) (*Leaf, error)

	// At returns a singleton Leaf for the dependency at position i in the
	// flattened (sorted, for leaves) order.
	At(i int) (*Leaf, error)

	// Select returns a Leaf holding exactly the given names, re-sorted into
	// canonical order. Every name must be present in the flattened
	// dependencies.
	Select(names ...string) (*Leaf, error)

	// ToValue returns the canonical JSON-compatible form of this node.
	ToValue() map[string]any

	// Save writes the canonical JSON text form to path.
	Save(path string) error

	fmt.Stringer

	// Restricts implementations to this package.
	isSpec()
}

// narrow builds the singleton or subset Leaf produced by an indexing
// operation. The source metadata is shallow-copied so the narrowed view owns
// its own mapping.
func narrow(names []string, meta map[string]any) *Leaf {
	return &Leaf{
		deps: names,
		meta: copyMeta(meta),
	}
}

func copyMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func getFrom(s Spec, name string) (*Leaf, error) {
	if !slices.Contains(s.Dependencies(), name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return narrow([]string{name}, s.Meta()), nil
}

func atFrom(s Spec, i int) (*Leaf, error) {
	deps := s.Dependencies()
	if i < 0 || i >= len(deps) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(deps))
	}
	return narrow([]string{deps[i]}, s.Meta()), nil
}

func selectFrom(s Spec, names []string) (*Leaf, error) {
	if len(names) == 0 {
		return nil, ErrEmptySpec
	}
	deps := s.Dependencies()
	for _, name := range names {
		if !slices.Contains(deps, name) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
	}
	// Canonical order, independent of the caller's order.
	picked := sortedUnique(names)
	if len(picked) != len(names) {
		return nil, &ValidationError{Reason: "selected names must be unique", Names: names}
	}
	return narrow(picked, s.Meta()), nil
}

// sortedUnique returns a sorted copy of names with duplicates collapsed.
func sortedUnique(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return slices.Compact(out)
}

// duplicates returns the names occurring more than once, in first-seen order.
func duplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var dups []string
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}
