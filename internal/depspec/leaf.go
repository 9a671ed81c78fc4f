package depspec

import (
	"fmt"
	"strings"
)

// Leaf is a flat dependency spec: a sorted set of unique dependency names plus
// a free-form metadata mapping.
//
// Leaves are immutable by convention; merge operations return new leaves and
// the in-place variants re-validate before committing.
type Leaf struct {
	deps []string // Always sorted, always unique.
	meta map[string]any
}

// NewLeaf creates a Leaf from the given dependency names and metadata.
//
// The names must be non-empty and unique; they are stored in sorted order
// regardless of the order given. A nil meta is replaced with an empty map.
func NewLeaf(names []string, meta map[string]any) (*Leaf, error) {
	if len(names) == 0 {
		return nil, ErrEmptySpec
	}
	if dups := duplicates(names); len(dups) > 0 {
		return nil, &ValidationError{Reason: "dependencies must be unique", Names: dups}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return &Leaf{deps: sortedUnique(names), meta: meta}, nil
}

// Dependencies returns the leaf's sorted dependency names.
// Callers must not mutate the returned slice.
func (l *Leaf) Dependencies() []string { return l.deps }

// Len returns the number of dependency names.
func (l *Leaf) Len() int { return len(l.deps) }

// Meta returns the leaf's metadata mapping. The map is live, not a copy.
func (l *Leaf) Meta() map[string]any { return l.meta }

// Get returns a singleton Leaf for the named dependency.
func (l *Leaf) Get(name string) (*Leaf, error) { return getFrom(l, name) }

// At returns a singleton Leaf for the name at sorted position i.
func (l *Leaf) At(i int) (*Leaf, error) { return atFrom(l, i) }

// Select returns a Leaf holding exactly the given names, re-sorted.
func (l *Leaf) Select(names ...string) (*Leaf, error) { return selectFrom(l, names) }

// Merge returns a new Leaf whose dependencies are the sorted union of l and
// other. The result's metadata is a copy of l's metadata only; other's
// metadata describes other, not the merged spec, and is discarded. A nil
// other yields a copy of l.
func (l *Leaf) Merge(other *Leaf) *Leaf {
	if other == nil {
		return narrow(l.deps, l.meta)
	}
	return narrow(sortedUnique(append(append([]string{}, l.deps...), other.deps...)), l.meta)
}

// MergeNames returns a new Leaf whose dependencies are the sorted union of l
// and the given names. The union of a valid leaf with any names is non-empty
// and deduplicated, so no validation failure is possible.
func (l *Leaf) MergeNames(names ...string) *Leaf {
	return narrow(sortedUnique(append(append([]string{}, l.deps...), names...)), l.meta)
}

// MergeInPlace replaces l's dependencies with the sorted union of l and other,
// keeping l's metadata.
func (l *Leaf) MergeInPlace(other *Leaf) {
	if other == nil {
		return
	}
	l.deps = sortedUnique(append(append([]string{}, l.deps...), other.deps...))
}

// MergeNamesInPlace replaces l's dependencies with the sorted union of l and
// the given names.
func (l *Leaf) MergeNamesInPlace(names ...string) {
	l.deps = sortedUnique(append(append([]string{}, l.deps...), names...))
}

// String implements fmt.Stringer.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%s)", strings.Join(l.deps, ", "))
}

func (l *Leaf) isSpec() {}
