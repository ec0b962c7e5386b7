// Package pkg provides the core libraries for treestruct.
//
// # Overview
//
// Treestruct builds, queries, and visualizes bidirectional tree structures:
// nodes carry a data payload and maintain parent and child edge sets that are
// always kept mutually consistent. The pkg directory is organized into four
// areas:
//
//  1. [treestruct] - The core data structure: nodes, directed edge sets,
//     traversals, queries, transformations, and JSON serialization.
//  2. [viz] - Graphviz DOT generation and SVG/PNG rendering.
//  3. [store] - Document persistence with memory, file, Redis, and MongoDB
//     backends.
//  4. [api] - HTTP API exposing stored documents and their renderings.
//
// # Architecture
//
// The typical data flow:
//
//	Forest JSON file
//	         ↓
//	    [treestruct] package (nodes + traversal + queries)
//	         ↓
//	    [viz] package (DOT generation + graphviz rendering)
//	         ↓
//	    SVG/PNG/DOT output
//
// Documents persisted through [store] round-trip through the same
// [treestruct] dict format, and [api] serves them over HTTP.
//
// # Quick Start
//
// Build a small tree and render it:
//
//	import (
//	    "github.com/matzehuels/treestruct/pkg/treestruct"
//	    "github.com/matzehuels/treestruct/pkg/viz"
//	)
//
//	root := treestruct.New[string]("root", nil, nil)
//	treestruct.New[string]("child", []*treestruct.Node[string]{root}, nil)
//
//	dot := viz.ToDOT(root, nil, viz.Options{Name: "example"})
//	svg, _ := viz.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/treestruct   # Specific package
//	go test -run Example       # Examples only
//
// [treestruct]: https://pkg.go.dev/github.com/matzehuels/treestruct/pkg/treestruct
// [viz]: https://pkg.go.dev/github.com/matzehuels/treestruct/pkg/viz
// [store]: https://pkg.go.dev/github.com/matzehuels/treestruct/pkg/store
// [api]: https://pkg.go.dev/github.com/matzehuels/treestruct/pkg/api
package pkg
