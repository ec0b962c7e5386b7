package treestruct

// VisitFunc is invoked once per visited node. Returning false stops the
// traversal; anything accumulated so far is kept (there is no rollback of
// callback side effects).
type VisitFunc[T any] func(n *Node[T]) bool

// LinkFunc is invoked once per directed edge, oriented from the already
// visited node to its neighbor. Returning false stops the walk.
type LinkFunc[T any] func(from, to *Node[T]) bool

// DepthFirst traverses from n in the given direction, calling visit for each
// reachable node exactly once. The traversal is pre-order, using an explicit
// stack: after a node is visited, all of its direction-neighbors are pushed
// and the most recently pushed unvisited node is processed next.
//
// A visited set keyed on node identity guarantees termination even when the
// structure contains cycles or diamonds; a node reachable via several paths
// is visited once, via whichever path pops it first.
func (n *Node[T]) DepthFirst(dir Direction, visit VisitFunc[T]) {
	n.traverse(dir, visit, true)
}

// BreadthFirst traverses from n in the given direction, calling visit for
// each reachable node exactly once, in FIFO (level) order. Termination and
// de-duplication behave as in [Node.DepthFirst].
func (n *Node[T]) BreadthFirst(dir Direction, visit VisitFunc[T]) {
	n.traverse(dir, visit, false)
}

// traverse is the shared driver. lifo selects which end of the pending list
// the next node is taken from: the push end for depth-first, the oldest end
// for breadth-first.
func (n *Node[T]) traverse(dir Direction, visit VisitFunc[T], lifo bool) {
	visited := make(map[*Node[T]]struct{})
	pending := []*Node[T]{n}

	for len(pending) > 0 {
		var next *Node[T]
		if lifo {
			next = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		} else {
			next = pending[0]
			pending = pending[1:]
		}
		if _, ok := visited[next]; ok {
			continue
		}
		visited[next] = struct{}{}
		if !visit(next) {
			return
		}
		pending = append(pending, next.Set(dir).Nodes()...)
	}
}

// WalkLinks walks every directed edge reachable from n in the given
// direction, calling link once per edge, oriented from the dequeued node to
// its neighbor. Nodes are processed in FIFO order and each node's outgoing
// links are reported before any of its neighbors are dequeued. A node
// already dequeued is never dequeued again, so each edge is observed exactly
// once even on cyclic structures.
func (n *Node[T]) WalkLinks(dir Direction, link LinkFunc[T]) {
	visited := make(map[*Node[T]]struct{})
	queue := []*Node[T]{n}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := visited[next]; ok {
			continue
		}
		visited[next] = struct{}{}
		for _, neighbor := range next.Set(dir).Nodes() {
			if !link(next, neighbor) {
				return
			}
			queue = append(queue, neighbor)
		}
	}
}
