package viz

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/treestruct/pkg/treestruct"
)

// Options configures DOT generation.
type Options struct {
	// Name is the digraph name. Defaults to "G".
	Name string

	// RankDir sets the graphviz rank direction ("TB", "LR", ...).
	// Empty leaves graphviz's default.
	RankDir string

	// GraphAttrs, NodeAttrs, and EdgeAttrs are default attributes applied to
	// the graph, every node, and every edge respectively.
	GraphAttrs map[string]string
	NodeAttrs  map[string]string
	EdgeAttrs  map[string]string
}

// Formatter produces the DOT identity (and label) for a payload. Payloads
// that format equal are drawn as the same node.
type Formatter[T any] func(data T) string

// Graph renders one or more tree structures through Graphviz. It holds a
// private clone of every structure, taken at construction, so concurrent
// mutation of the live trees cannot affect an in-progress render.
type Graph[T any] struct {
	roots  []*treestruct.Node[T]
	format Formatter[T]
	opts   Options
}

// NewGraph snapshots the structure reachable forward from node and prepares
// it for rendering. A nil format falls back to fmt.Sprint.
func NewGraph[T any](node *treestruct.Node[T], format Formatter[T], opts Options) *Graph[T] {
	return NewForest([]*treestruct.Node[T]{node}, format, opts)
}

// NewForest snapshots several root structures into a single diagram.
func NewForest[T any](nodes []*treestruct.Node[T], format Formatter[T], opts Options) *Graph[T] {
	if format == nil {
		format = func(data T) string { return fmt.Sprint(data) }
	}
	if opts.Name == "" {
		opts.Name = "G"
	}
	roots := make([]*treestruct.Node[T], len(nodes))
	for i, n := range nodes {
		roots[i] = n.Clone()
	}
	return &Graph[T]{roots: roots, format: format, opts: opts}
}

// DOT generates the Graphviz DOT form of the snapshot. Each directed link is
// emitted exactly once, in the order the forward link walk observes it, with
// node declarations emitted on first sight.
func (g *Graph[T]) DOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.opts.Name)
	if g.opts.RankDir != "" {
		fmt.Fprintf(&buf, "  rankdir=%s;\n", g.opts.RankDir)
	}
	writeAttrs(&buf, "graph", g.opts.GraphAttrs)
	writeAttrs(&buf, "node", g.opts.NodeAttrs)
	writeAttrs(&buf, "edge", g.opts.EdgeAttrs)

	declared := make(map[string]struct{})
	declare := func(label string) {
		if _, ok := declared[label]; ok {
			return
		}
		declared[label] = struct{}{}
		fmt.Fprintf(&buf, "  %q;\n", label)
	}

	for _, root := range g.roots {
		// A lone root still gets declared even though it has no links.
		declare(g.format(root.Data))

		root.WalkLinks(treestruct.Forward, func(from, to *treestruct.Node[T]) bool {
			ff, tf := g.format(from.Data), g.format(to.Data)
			declare(ff)
			declare(tf)
			fmt.Fprintf(&buf, "  %q -> %q;\n", ff, tf)
			return true
		})
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeAttrs(buf *bytes.Buffer, scope string, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	parts := make([]string, 0, len(attrs))
	for _, k := range sortedKeys(attrs) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	fmt.Fprintf(buf, "  %s [%s];\n", scope, strings.Join(parts, ", "))
}

// ToDOT is a convenience wrapper: snapshot node and generate DOT in one call.
func ToDOT[T any](node *treestruct.Node[T], format Formatter[T], opts Options) string {
	return NewGraph(node, format, opts).DOT()
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
