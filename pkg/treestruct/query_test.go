package treestruct

import (
	"errors"
	"testing"
)

func TestRootsAndLeaves(t *testing.T) {
	nodes := chain(1, 2, 3)

	roots := nodes[2].Roots()
	if len(roots) != 1 || roots[0] != nodes[0] {
		t.Errorf("roots(C) = %v, want [A]", payloads(roots))
	}

	leaves := nodes[0].Leaves()
	if len(leaves) != 1 || leaves[0] != nodes[2] {
		t.Errorf("leaves(A) = %v, want [C]", payloads(leaves))
	}
}

func TestRootsStandaloneNode(t *testing.T) {
	n := New(1, nil, nil)
	if roots := n.Roots(); len(roots) != 1 || roots[0] != n {
		t.Errorf("a lone node should be its own root, got %v", payloads(roots))
	}
	if leaves := n.Leaves(); len(leaves) != 1 || leaves[0] != n {
		t.Errorf("a lone node should be its own leaf, got %v", payloads(leaves))
	}
}

func TestRootsMultiple(t *testing.T) {
	// Two disjoint parents converging on one child.
	p1 := New("p1", nil, nil)
	p2 := New("p2", nil, nil)
	c := New("c", []*Node[string]{p1, p2}, nil)

	roots := c.Roots()
	if len(roots) != 2 {
		t.Fatalf("roots = %v, want two", roots)
	}

	if _, err := c.Root(); !errors.Is(err, ErrMultipleValues) {
		t.Errorf("Root() err = %v, want ErrMultipleValues", err)
	}
}

func TestRootSingle(t *testing.T) {
	nodes := chain(1, 2, 3)
	root, err := nodes[2].Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if root != nodes[0] {
		t.Errorf("root = %v, want %v", root, nodes[0])
	}
}

func TestGather(t *testing.T) {
	// root → {mid} → leaf, plus a second root over mid.
	root := New("root", nil, nil)
	other := New("other", nil, nil)
	mid := New("mid", []*Node[string]{root, other}, nil)
	leaf := New("leaf", []*Node[string]{mid}, nil)

	tests := []struct {
		name  string
		start *Node[string]
		dir   Direction
		want  int
	}{
		{name: "AnyFindsWholeStructure", start: leaf, dir: Any, want: 4},
		{name: "ForwardFromMid", start: mid, dir: Forward, want: 2},
		{name: "BackwardFromMid", start: mid, dir: Backward, want: 3},
		{name: "ForwardFromLeaf", start: leaf, dir: Forward, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Gather(tt.dir)
			if len(got) != tt.want {
				names := make([]string, len(got))
				for i, n := range got {
					names[i] = n.Data
				}
				t.Errorf("gather = %v, want %d nodes", names, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	nodes := chain(1, 2, 3, 4)
	even := func(n *Node[int]) bool { return n.Data%2 == 0 }
	isThree := func(n *Node[int]) bool { return n.Data == 3 }
	none := func(n *Node[int]) bool { return false }

	t.Run("All", func(t *testing.T) {
		got := nodes[0].FindAll(even, Any)
		if len(got) != 2 {
			t.Errorf("found %v, want two matches", payloads(got))
		}
	})

	t.Run("Single", func(t *testing.T) {
		got, err := nodes[0].Find(isThree, Any, false)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if got == nil || got.Data != 3 {
			t.Errorf("got %v, want node 3", got)
		}
	})

	t.Run("MultipleMatches", func(t *testing.T) {
		if _, err := nodes[0].Find(even, Any, false); !errors.Is(err, ErrMultipleValues) {
			t.Errorf("err = %v, want ErrMultipleValues", err)
		}
	})

	t.Run("NoMatchLenient", func(t *testing.T) {
		got, err := nodes[0].Find(none, Any, false)
		if err != nil || got != nil {
			t.Errorf("got (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("NoMatchStrict", func(t *testing.T) {
		if _, err := nodes[0].Find(none, Any, true); !errors.Is(err, ErrEmptySet) {
			t.Errorf("err = %v, want ErrEmptySet", err)
		}
	})

	t.Run("DirectionRestricts", func(t *testing.T) {
		// Searching forward from node 3 cannot see node 2.
		got, err := nodes[2].Find(even, Forward, false)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if got == nil || got.Data != 4 {
			t.Errorf("got %v, want node 4", got)
		}
	})
}

func TestFlattenChain(t *testing.T) {
	nodes := chain(1, 2, 3)

	tests := []struct {
		name  string
		start *Node[int]
		dir   Direction
		want  []int
	}{
		{name: "DefaultLeafToRootReversed", start: nodes[0], dir: Any, want: []int{1, 2, 3}},
		{name: "ForwardFromRoot", start: nodes[0], dir: Forward, want: []int{1, 2, 3}},
		{name: "BackwardFromLeaf", start: nodes[2], dir: Backward, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := tt.start.Flatten(tt.dir)
			if err != nil {
				t.Fatalf("Flatten: %v", err)
			}
			if len(paths) != 1 {
				t.Fatalf("got %d paths, want 1", len(paths))
			}
			if got := payloads(paths[0]); !equalInts(got, tt.want) {
				t.Errorf("path = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlattenMultipleLeaves(t *testing.T) {
	// root forks into two chains; one path per leaf.
	root := New(0, nil, nil)
	l1 := New(1, []*Node[int]{root}, nil)
	l2 := New(2, []*Node[int]{root}, nil)
	_, _ = l1, l2

	paths, err := root.Flatten(Any)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for _, p := range paths {
		if len(p) != 2 || p[0] != root {
			t.Errorf("path = %v, want [0 leaf]", payloads(p))
		}
	}
}

func TestFlattenMultiParent(t *testing.T) {
	// Diamond: a → {b, c} → d. Flattening from anywhere in it must fail.
	a := New("a", nil, nil)
	b := New("b", []*Node[string]{a}, nil)
	c := New("c", []*Node[string]{a}, nil)
	d := New("d", []*Node[string]{b, c}, nil)

	if _, err := d.Flatten(Any); !errors.Is(err, ErrMultiParent) {
		t.Errorf("err = %v, want ErrMultiParent", err)
	}
	if _, err := d.Flatten(Backward); !errors.Is(err, ErrMultiParent) {
		t.Errorf("backward err = %v, want ErrMultiParent", err)
	}
}
