package treestruct

// Roots returns every node with no parents that is reachable backward from
// n. A node without parents is its own (sole) root, so the result is never
// empty. The order is unspecified.
func (n *Node[T]) Roots() []*Node[T] { return n.absolutes(Backward) }

// Leaves returns every node with no children that is reachable forward from
// n. A node without children is its own (sole) leaf. The order is
// unspecified.
func (n *Node[T]) Leaves() []*Node[T] { return n.absolutes(Forward) }

// absolutes collects nodes reachable in dir that have no further neighbor in
// dir: parents-of-parents with no parents for Backward, terminal children
// for Forward.
func (n *Node[T]) absolutes(dir Direction) []*Node[T] {
	var out []*Node[T]
	n.DepthFirst(dir, func(m *Node[T]) bool {
		if m.Set(dir).Len() == 0 {
			out = append(out, m)
		}
		return true
	})
	return out
}

// Root returns the single root of n. It returns ErrMultipleValues if the
// structure containing n has more than one root; a node that participates in
// several disjoint ancestor chains gets the same cardinality check as
// [NodeSet.One].
func (n *Node[T]) Root() (*Node[T], error) {
	roots := n.Roots()
	switch {
	case len(roots) > 1:
		return nil, ErrMultipleValues
	case len(roots) == 0:
		return nil, ErrEmptySet
	}
	return roots[0], nil
}

// Gather returns all nodes reachable from n in dir. With Any it returns
// every node in the connected structure containing n: each of n's roots is
// expanded forward and the results are unioned. The order is unspecified.
func (n *Node[T]) Gather(dir Direction) []*Node[T] {
	starts := []*Node[T]{n}
	if dir == Any {
		starts = n.Roots()
		dir = Forward
	}

	seen := make(map[*Node[T]]struct{})
	var out []*Node[T]
	for _, start := range starts {
		start.DepthFirst(dir, func(m *Node[T]) bool {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				out = append(out, m)
			}
			return true
		})
	}
	return out
}

// FindAll returns every node in Gather(dir) for which pred is true.
func (n *Node[T]) FindAll(pred func(*Node[T]) bool, dir Direction) []*Node[T] {
	var out []*Node[T]
	for _, m := range n.Gather(dir) {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the single node matching pred, searching Gather(dir). With no
// match it returns (nil, nil), or (nil, ErrEmptySet) when failOnEmpty is
// true. With more than one match it returns ErrMultipleValues.
func (n *Node[T]) Find(pred func(*Node[T]) bool, dir Direction, failOnEmpty bool) (*Node[T], error) {
	matches := n.FindAll(pred, dir)
	switch {
	case len(matches) == 0 && failOnEmpty:
		return nil, ErrEmptySet
	case len(matches) > 1:
		return nil, ErrMultipleValues
	case len(matches) == 0:
		return nil, nil
	}
	return matches[0], nil
}

// Flatten extracts ordered node paths from the structure, one per start
// point. With Any the start points are n's leaves and each path is collected
// by a backward depth-first traversal, then reversed so it reads root→leaf.
// With an explicit direction the sole start point is n itself and the
// traversal runs in that direction; only backward results are reversed.
//
// Every node on a produced path must have at most one parent. Converging
// structures make the path ambiguous, so Flatten returns ErrMultiParent as
// soon as one is encountered.
func (n *Node[T]) Flatten(dir Direction) ([][]*Node[T], error) {
	starts := []*Node[T]{n}
	walk := dir
	if dir == Any {
		starts = n.Leaves()
		walk = Backward
	}

	paths := make([][]*Node[T], 0, len(starts))
	for _, start := range starts {
		var path []*Node[T]
		start.DepthFirst(walk, func(m *Node[T]) bool {
			path = append(path, m)
			return true
		})
		for _, m := range path {
			if m.Parents().Len() > 1 {
				return nil, ErrMultiParent
			}
		}
		if dir != Forward {
			reverse(path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func reverse[T any](s []*Node[T]) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
