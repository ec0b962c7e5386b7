package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treestruct/pkg/treestruct"
)

// newInspectCmd creates the inspect command, which prints structural
// statistics for a forest JSON file.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print structural statistics for a forest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())

	roots, err := treestruct.ReadFile[any](path)
	if err != nil {
		return err
	}
	logger.Debug("loaded forest", "path", path, "trees", len(roots))

	fmt.Println(StyleTitle.Render(path))
	printKeyValue("trees", fmt.Sprintf("%d", len(roots)))

	for i, root := range roots {
		stats := collectStats(root)
		fmt.Println()
		printInfo("tree %d: %v", i+1, root.Data)
		printDetail("nodes:  %d", stats.nodes)
		printDetail("links:  %d", stats.links)
		printDetail("leaves: %d", stats.leaves)
		printDetail("height: %d", stats.height)
		if stats.paths >= 0 {
			printDetail("paths:  %d", stats.paths)
		} else {
			printDetail("paths:  n/a (converging structure)")
		}
	}
	return nil
}

// treeStats summarizes one tree. paths is -1 when the structure converges
// and path flattening is undefined.
type treeStats struct {
	nodes  int
	links  int
	leaves int
	height int
	paths  int
}

func collectStats(root *treestruct.Node[any]) treeStats {
	var stats treeStats

	depth := map[*treestruct.Node[any]]int{root: 1}
	root.BreadthFirst(treestruct.Forward, func(n *treestruct.Node[any]) bool {
		stats.nodes++
		stats.links += n.Children().Len()
		if d := depth[n]; d > stats.height {
			stats.height = d
		}
		for _, child := range n.Children().Nodes() {
			if _, ok := depth[child]; !ok {
				depth[child] = depth[n] + 1
			}
		}
		return true
	})

	stats.leaves = len(root.Leaves())

	paths, err := root.Flatten(treestruct.Any)
	switch {
	case errors.Is(err, treestruct.ErrMultiParent):
		stats.paths = -1
	case err != nil:
		stats.paths = -1
	default:
		stats.paths = len(paths)
	}
	return stats
}
