// Package viz renders tree structures as Graphviz diagrams.
//
// The package consumes only the public traversal API of
// [github.com/matzehuels/treestruct/pkg/treestruct]: the forward link walk
// for drawing edges and Clone for taking a private snapshot before
// rendering, so mutation of the live structure during a render is harmless.
//
// # Usage
//
//	g := viz.NewGraph(root, nil, viz.Options{RankDir: "TB"})
//	dot := g.DOT()
//	svg, err := viz.RenderSVG(dot)
//
// Node identity in the diagram is the formatted payload: payloads that
// format equal collapse into a single drawn node.
package viz
