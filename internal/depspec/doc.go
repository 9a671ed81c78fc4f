// Package depspec implements the dependency-spec data model for model persistence.
//
// A dependency spec declares the named input or output columns a model consumes
// or produces. Specs form a tree with two variants:
//   - Leaf: a sorted set of unique dependency names plus free-form metadata
//   - Composite: a non-empty ordered sequence of child specs plus its own metadata
//
// The flattened dependency names of any tree must be globally unique; duplicate
// declarations are rejected at construction, merge, and append time rather than
// silently deduplicated, since a duplicate column declaration is almost always a
// pipeline bug.
//
// Specs serialize to a canonical, pretty-printed JSON form:
//
//	{ "dependencies": ["f1", "f2"], "meta": {...} }   // leaf
//	{ "children": [ <node>, ... ], "meta": {...} }    // composite
//
// Each node must carry exactly one of the two discriminant keys; a node with both
// or neither is rejected with a ShapeError.
//
// Example usage:
//
//	x, err := depspec.NewLeaf([]string{"age", "income"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := x.Save("X_spec.json"); err != nil {
//	    log.Fatal(err)
//	}
package depspec
