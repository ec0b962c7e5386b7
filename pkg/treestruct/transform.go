package treestruct

// Delete severs n from its neighbors and returns n. With Backward only the
// parent links are removed, with Forward only the child links, and with Any
// both. Each removal updates the reciprocal set of the affected neighbor, so
// after Delete(Any) no previously connected node references n.
func (n *Node[T]) Delete(dir Direction) *Node[T] {
	if dir == Any || dir == Backward {
		for _, parent := range n.parents.Nodes() {
			parent.Children().Remove(n)
		}
	}
	if dir == Any || dir == Forward {
		for _, child := range n.children.Nodes() {
			n.children.Remove(child)
		}
	}
	return n
}

// Clone deep-copies the structure reachable forward from n and returns the
// copy's root. Payload values are carried over as-is (shared, not copied);
// every node is a fresh entity, so mutating the clone's edges never affects
// the original. Parent links of n itself are not cloned: the result is a new
// root.
//
// Clone does not guard against cycles; it is intended for tree-shaped
// structures such as visualization snapshots.
func (n *Node[T]) Clone() *Node[T] {
	children := make([]*Node[T], 0, n.children.Len())
	for child := range n.children.items {
		children = append(children, child.Clone())
	}
	return New(n.Data, nil, children)
}

// FromNodes builds a chain from an ordered node sequence: the first element
// becomes the root and each subsequent element the sole child of the
// previous one. The input nodes are left untouched; the chain consists of
// new nodes carrying the same payloads, with any pre-existing edges on the
// originals disregarded. An empty input yields nil.
func FromNodes[T any](nodes []*Node[T]) *Node[T] {
	if len(nodes) == 0 {
		return nil
	}
	child := FromNodes(nodes[1:])
	if child == nil {
		return New(nodes[0].Data, nil, nil)
	}
	return New(nodes[0].Data, nil, []*Node[T]{child})
}
