package depspec

import (
	"encoding/json"
	"fmt"
	"os"
)

// Canonical node keys.
const (
	keyDependencies = "dependencies"
	keyChildren     = "children"
	keyMeta         = "meta"
)

// ToValue returns the canonical JSON-compatible form of the leaf.
func (l *Leaf) ToValue() map[string]any {
	return map[string]any{
		keyDependencies: append([]string{}, l.deps...),
		keyMeta:         l.meta,
	}
}

// ToValue returns the canonical JSON-compatible form of the composite.
func (c *Composite) ToValue() map[string]any {
	children := make([]any, len(c.children))
	for i, child := range c.children {
		children[i] = child.ToValue()
	}
	return map[string]any{
		keyChildren: children,
		keyMeta:     c.meta,
	}
}

// MarshalJSON implements json.Marshaler.
func (l *Leaf) MarshalJSON() ([]byte, error) { return json.Marshal(l.ToValue()) }

// MarshalJSON implements json.Marshaler.
func (c *Composite) MarshalJSON() ([]byte, error) { return json.Marshal(c.ToValue()) }

// UnmarshalJSON implements json.Unmarshaler. The data must decode to a leaf
// node; a composite node is rejected.
func (l *Leaf) UnmarshalJSON(data []byte) error {
	s, err := Decode(data)
	if err != nil {
		return err
	}
	decoded, ok := s.(*Leaf)
	if !ok {
		return &ShapeError{Details: "expected a leaf node", Value: string(data)}
	}
	*l = *decoded
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. The data must decode to a
// composite node; a leaf node is rejected.
func (c *Composite) UnmarshalJSON(data []byte) error {
	s, err := Decode(data)
	if err != nil {
		return err
	}
	decoded, ok := s.(*Composite)
	if !ok {
		return &ShapeError{Details: "expected a composite node", Value: string(data)}
	}
	*c = *decoded
	return nil
}

// FromValue reconstructs a Spec from its canonical JSON-compatible form, as
// produced by ToValue or by decoding the canonical JSON text.
//
// A node must carry exactly one of the "dependencies" and "children" keys;
// both or neither is a ShapeError, never resolved by precedence. A bare array
// decodes as a composite of its elements.
func FromValue(v any) (Spec, error) {
	switch node := v.(type) {
	case map[string]any:
		return nodeFromMap(node)
	case []any:
		children := make([]Spec, len(node))
		for i, elem := range node {
			child, err := FromValue(elem)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return NewComposite(children, nil)
	default:
		return nil, &ShapeError{Details: "node must be a JSON object or array", Value: v}
	}
}

func nodeFromMap(node map[string]any) (Spec, error) {
	depsVal, hasDeps := node[keyDependencies]
	childrenVal, hasChildren := node[keyChildren]

	switch {
	case hasDeps && hasChildren:
		return nil, &ShapeError{Details: `node has both "dependencies" and "children"`, Value: node}
	case !hasDeps && !hasChildren:
		return nil, &ShapeError{Details: `node has neither "dependencies" nor "children"`, Value: node}
	}

	for key := range node {
		if key != keyDependencies && key != keyChildren && key != keyMeta {
			return nil, &ShapeError{Details: fmt.Sprintf("unrecognized key %q", key), Value: node}
		}
	}

	meta, err := metaFromNode(node)
	if err != nil {
		return nil, err
	}

	if hasDeps {
		names, err := namesFromValue(depsVal)
		if err != nil {
			return nil, err
		}
		return NewLeaf(names, meta)
	}

	elems, ok := childrenVal.([]any)
	if !ok {
		return nil, &ShapeError{Details: `"children" must be an array`, Value: childrenVal}
	}
	children := make([]Spec, len(elems))
	for i, elem := range elems {
		if _, isString := elem.(string); isString {
			return nil, &ValidationError{
				Reason: "a child must be a spec node, not a bare name",
				Names:  []string{elem.(string)},
			}
		}
		child, err := FromValue(elem)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return NewComposite(children, meta)
}

func metaFromNode(node map[string]any) (map[string]any, error) {
	raw, ok := node[keyMeta]
	if !ok || raw == nil {
		return nil, nil
	}
	meta, ok := raw.(map[string]any)
	if !ok {
		return nil, &ShapeError{Details: `"meta" must be an object`, Value: raw}
	}
	return meta, nil
}

func namesFromValue(v any) ([]string, error) {
	switch deps := v.(type) {
	case []string:
		return deps, nil
	case []any:
		names := make([]string, len(deps))
		for i, elem := range deps {
			name, ok := elem.(string)
			if !ok {
				return nil, &ValidationError{Reason: fmt.Sprintf("dependency name %v is not a string", elem)}
			}
			names[i] = name
		}
		return names, nil
	default:
		return nil, &ShapeError{Details: `"dependencies" must be an array of strings`, Value: v}
	}
}

// Decode reconstructs a Spec from canonical JSON text.
func Decode(data []byte) (Spec, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse spec JSON: %w", err)
	}
	return FromValue(v)
}

// Encode renders a Spec as pretty-printed canonical JSON text.
func Encode(s Spec) ([]byte, error) {
	data, err := json.MarshalIndent(s.ToValue(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode spec: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the leaf's canonical JSON text form to path.
func (l *Leaf) Save(path string) error { return saveSpec(l, path) }

// Save writes the composite's canonical JSON text form to path.
func (c *Composite) Save(path string) error { return saveSpec(c, path) }

func saveSpec(s Spec, path string) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write spec: %w", err)
	}
	return nil
}

// Load reads a canonical JSON spec file from path.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}
	return Decode(data)
}
