// Package treestruct provides an in-memory structure for building,
// traversing, mutating, and serializing directed node graphs whose edges are
// tracked symmetrically in both directions.
//
// # Overview
//
// Every [Node] owns two [NodeSet] collections, parents and children, and the
// two are kept consistent automatically: adding B to A's children records A
// in B's parents within the same call, and removal mirrors the same way.
// Despite the package name this is a general directed graph with
// multi-parent support; a node may be attached as a child of several parents
// at once, and callers can even construct cycles.
//
// # Basic Usage
//
// Create nodes with [New] and link them through their edge sets:
//
//	root := treestruct.New("root", nil, nil)
//	child := treestruct.New("child", []*treestruct.Node[string]{root}, nil)
//	grand := treestruct.New("grand", nil, nil)
//	child.Children().Add(grand)
//
// Traverse with [Node.DepthFirst], [Node.BreadthFirst], or [Node.WalkLinks];
// the visit callback returns false to stop early. Query with [Node.Roots],
// [Node.Leaves], [Node.Gather], [Node.Find], and [Node.Flatten]; restructure
// with [Node.Delete], [Node.Clone], and [FromNodes].
//
// # Directions
//
// Traversals and queries take a [Direction]: [Forward] walks toward
// children, [Backward] toward parents. [Any] is accepted by the operations
// that define a widened meaning for it (Gather and Find search the whole
// connected structure, Flatten starts from the leaves, Delete severs both
// sides).
//
// # Cycles and Diamonds
//
// Traversals keep an identity-keyed visited set, so they terminate and visit
// each node exactly once even when the structure contains cycles or a node
// is reachable via several paths. [Node.Flatten] refuses converging
// structures with [ErrMultiParent], and [Node.Clone] plus the [Dict]
// conversions assume tree shape.
//
// # Serialization
//
// [ToDict] and [FromDict] convert between node structures and the
// `{"data": ..., "children": [...]}` interchange shape, with pluggable
// payload converters. [Marshal], [Write], and [WriteFile] (and their Read
// counterparts) handle whole forests as JSON, one record per root.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation: a single Add or Remove updates
// the edge sets of two nodes. Callers sharing a structure across goroutines
// must serialize mutations externally, and mutation during traversal is
// unsupported. [Node.Clone] exists so consumers such as renderers can take a
// private snapshot first.
package treestruct
