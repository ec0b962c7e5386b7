package treestruct

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is the base error for cardinality contract violations.
	// ErrEmptySet and ErrMultipleValues wrap it, so callers can match the
	// whole family with errors.Is(err, ErrInvariant).
	ErrInvariant = errors.New("invariant violation")

	// ErrEmptySet is returned by [NodeSet.One], [Node.Find], and [Node.Root]
	// when a value was required but the set of candidates is empty.
	ErrEmptySet = fmt.Errorf("%w: expected non-empty set", ErrInvariant)

	// ErrMultipleValues is returned by [NodeSet.One], [Node.Find], and
	// [Node.Root] when exactly one value was expected but several exist.
	ErrMultipleValues = fmt.Errorf("%w: expected exactly one value", ErrInvariant)

	// ErrMultiParent is returned by [Node.Flatten] when a produced path would
	// pass through a node with more than one parent. Path extraction is only
	// defined for non-converging structures.
	ErrMultiParent = errors.New("cannot flatten through a node with multiple parents")
)

// Direction selects which adjacency a traversal or query operates on.
type Direction int

const (
	// Any leaves the direction unspecified. Operations that accept Any
	// (Gather, Find, Flatten, Delete) document how they widen it.
	Any Direction = 0
	// Forward points toward children.
	Forward Direction = 1
	// Backward points toward parents.
	Backward Direction = -1
)

// Opposite returns the reversed direction. Any is its own opposite.
func (d Direction) Opposite() Direction { return -d }

// String returns "forward", "backward", or "any".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "any"
	}
}

// Node is a vertex in a bidirectional tree structure. Each node carries a
// payload and two self-synchronizing edge sets: adding a node to another's
// children automatically records the reverse parent link, and vice versa.
//
// Nodes are identified by pointer, never by payload: two nodes with equal
// payloads are distinct, and edge sets are keyed on identity.
//
// Despite the package name, nothing prevents a node from having several
// parents or from participating in a cycle. Traversals de-duplicate visited
// nodes and terminate on cyclic structures; Flatten rejects multi-parent
// paths explicitly.
//
// Node is not safe for concurrent mutation. A single Add or Remove touches
// the edge sets of two nodes, so callers sharing a structure across
// goroutines must serialize all mutations externally.
type Node[T any] struct {
	// Data is the caller-defined payload. It is never interpreted by this
	// package beyond being passed to converter and formatter callbacks.
	Data T

	parents  *NodeSet[T]
	children *NodeSet[T]
}

// New creates a node with the given payload and links it into the reciprocal
// edge sets of every node in parents and children. Both slices may be nil.
func New[T any](data T, parents, children []*Node[T]) *Node[T] {
	n := &Node[T]{Data: data}
	n.parents = newNodeSet(n, Backward)
	n.children = newNodeSet(n, Forward)
	n.parents.Update(parents...)
	n.children.Update(children...)
	return n
}

// Parents returns the node's parent set. The returned set is live: mutating
// it mutates the structure.
func (n *Node[T]) Parents() *NodeSet[T] { return n.parents }

// Children returns the node's child set. The returned set is live: mutating
// it mutates the structure.
func (n *Node[T]) Children() *NodeSet[T] { return n.children }

// Set returns the edge set for the given direction: parents for Backward,
// children otherwise. Every traversal and query in this package is built on
// this single indirection.
func (n *Node[T]) Set(dir Direction) *NodeSet[T] {
	if dir == Backward {
		return n.parents
	}
	return n.children
}

// Connections returns the union of the node's parents and children.
// The two sets cannot overlap ambiguously since membership is unique, but a
// node that is both parent and child of n appears once.
func (n *Node[T]) Connections() []*Node[T] {
	seen := make(map[*Node[T]]struct{}, n.parents.Len()+n.children.Len())
	out := make([]*Node[T], 0, n.parents.Len()+n.children.Len())
	for _, s := range []*NodeSet[T]{n.parents, n.children} {
		for m := range s.items {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// String formats the node's payload for debugging.
func (n *Node[T]) String() string { return fmt.Sprintf("<Node %v>", n.Data) }

// NodeSet is one direction's adjacency for a single owning node. Mutations
// are mirrored on the opposite-direction set of the affected node within the
// same call, so the structure never exposes a half-linked state:
// B ∈ A.Children() ⇔ A ∈ B.Parents() after every operation.
//
// The set is unordered and membership is keyed on node identity.
type NodeSet[T any] struct {
	owner *Node[T]
	dir   Direction
	items map[*Node[T]]struct{}
}

func newNodeSet[T any](owner *Node[T], dir Direction) *NodeSet[T] {
	return &NodeSet[T]{owner: owner, dir: dir, items: make(map[*Node[T]]struct{})}
}

// Add inserts node into the set and inserts the owner into node's
// opposite-direction set. Adding a node already present is a no-op.
func (s *NodeSet[T]) Add(node *Node[T]) {
	if node == nil {
		return
	}
	if _, ok := s.items[node]; ok {
		return
	}
	s.items[node] = struct{}{}
	node.Set(s.dir.Opposite()).items[s.owner] = struct{}{}
}

// Remove deletes node from the set and deletes the owner from node's
// opposite-direction set. Removing an absent node is a no-op.
func (s *NodeSet[T]) Remove(node *Node[T]) {
	if node == nil {
		return
	}
	if _, ok := s.items[node]; !ok {
		return
	}
	delete(s.items, node)
	delete(node.Set(s.dir.Opposite()).items, s.owner)
}

// Update adds every given node. Equivalent to repeated Add; order is
// irrelevant since membership is idempotent.
func (s *NodeSet[T]) Update(nodes ...*Node[T]) {
	for _, n := range nodes {
		s.Add(n)
	}
}

// Discard removes every given node. Equivalent to repeated Remove.
func (s *NodeSet[T]) Discard(nodes ...*Node[T]) {
	for _, n := range nodes {
		s.Remove(n)
	}
}

// Contains reports whether node is a member of the set.
func (s *NodeSet[T]) Contains(node *Node[T]) bool {
	_, ok := s.items[node]
	return ok
}

// Len returns the number of members.
func (s *NodeSet[T]) Len() int { return len(s.items) }

// Direction returns the direction this set represents for its owner.
func (s *NodeSet[T]) Direction() Direction { return s.dir }

// Nodes returns the members as a slice in unspecified order.
// The slice is a copy; mutating it does not affect the set.
func (s *NodeSet[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], 0, len(s.items))
	for n := range s.items {
		out = append(out, n)
	}
	return out
}

// One returns the sole member of the set. If the set is empty it returns
// (nil, nil), or (nil, ErrEmptySet) when failOnEmpty is true. If the set has
// more than one member it returns ErrMultipleValues.
func (s *NodeSet[T]) One(failOnEmpty bool) (*Node[T], error) {
	switch {
	case len(s.items) == 0 && failOnEmpty:
		return nil, ErrEmptySet
	case len(s.items) > 1:
		return nil, ErrMultipleValues
	}
	for n := range s.items {
		return n, nil
	}
	return nil, nil
}
