package treestruct

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Dict is the interchange form of one tree. It serializes as
//
//	{"data": <payload>, "children": [<same shape>, ...]}
//
// with the children array always present, even when empty. There is no
// versioning and no schema beyond this shape.
type Dict[T any] struct {
	Data     T         `json:"data"`
	Children []Dict[T] `json:"children"`
}

// MarshalJSON emits the dict with a non-nil children array.
func (d Dict[T]) MarshalJSON() ([]byte, error) {
	children := d.Children
	if children == nil {
		children = []Dict[T]{}
	}
	return json.Marshal(struct {
		Data     T         `json:"data"`
		Children []Dict[T] `json:"children"`
	}{d.Data, children})
}

// Identity is the default payload converter: it returns its argument.
func Identity[T any](v T) T { return v }

// ToDict converts the structure containing n into its interchange form, one
// Dict per root (or a single Dict for n itself if the structure is a lone
// node). Each payload is passed through convert.
//
// ToDict recurses through child links without cycle detection; it is defined
// for tree-shaped structures.
func ToDict[T, U any](n *Node[T], convert func(T) U) []Dict[U] {
	roots := n.Roots()
	if len(roots) == 0 {
		roots = []*Node[T]{n}
	}
	out := make([]Dict[U], len(roots))
	for i, root := range roots {
		out[i] = dictFromNode(root, convert)
	}
	return out
}

func dictFromNode[T, U any](n *Node[T], convert func(T) U) Dict[U] {
	d := Dict[U]{Data: convert(n.Data), Children: make([]Dict[U], 0, n.children.Len())}
	for child := range n.children.items {
		d.Children = append(d.Children, dictFromNode(child, convert))
	}
	return d
}

// FromDict is the inverse of one ToDict record: it builds a tree of new
// nodes from d, applying convert to every data value, and returns the root.
func FromDict[U, T any](d Dict[U], convert func(U) T) *Node[T] {
	n := New(convert(d.Data), nil, nil)
	for _, child := range d.Children {
		n.Children().Add(FromDict(child, convert))
	}
	return n
}

// Marshal encodes the structure containing n as indented forest JSON, one
// record per root. Payloads must be JSON-marshalable.
func Marshal[T any](n *Node[T]) ([]byte, error) {
	data, err := json.MarshalIndent(ToDict(n, Identity[T]), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes forest JSON produced by [Marshal] (or compatible input)
// and returns one root node per record.
func Unmarshal[T any](data []byte) ([]*Node[T], error) {
	var dicts []Dict[T]
	if err := json.Unmarshal(data, &dicts); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	roots := make([]*Node[T], len(dicts))
	for i, d := range dicts {
		roots[i] = FromDict(d, Identity[T])
	}
	return roots, nil
}

// Write encodes the structure containing n as forest JSON to w.
func Write[T any](n *Node[T], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDict(n, Identity[T])); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes forest JSON from r and returns one root node per record.
func Read[T any](r io.Reader) ([]*Node[T], error) {
	var dicts []Dict[T]
	if err := json.NewDecoder(r).Decode(&dicts); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	roots := make([]*Node[T], len(dicts))
	for i, d := range dicts {
		roots[i] = FromDict(d, Identity[T])
	}
	return roots, nil
}

// WriteFile writes the structure containing n to a JSON file.
// The file is created with 0644 permissions.
func WriteFile[T any](n *Node[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(n, f)
}

// ReadFile reads a forest JSON file and returns one root node per record.
func ReadFile[T any](path string) ([]*Node[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read[T](f)
}
