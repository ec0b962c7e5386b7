package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treestruct/pkg/treestruct"
	"github.com/matzehuels/treestruct/pkg/viz"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; derived from the input when empty
	format  string // "svg", "png", or "dot"
	rankDir string // graphviz rank direction
	name    string // digraph name
}

// validFormats is the set of supported render output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true}

// newRenderCmd creates the render command for generating visualizations
// from a forest JSON file.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a forest file as DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if opts.format == "" {
				opts.format = cfg.Render.Format
			}
			if opts.rankDir == "" {
				opts.rankDir = cfg.Render.RankDir
			}
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", opts.format)
			}
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to input name with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", "", "graphviz rank direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&opts.name, "name", "", "digraph name (defaults to the input file name)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	roots, err := treestruct.ReadFile[any](path)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		return fmt.Errorf("%s contains no trees", path)
	}

	name := opts.name
	if name == "" {
		name = trimExt(path)
	}
	dot := viz.NewForest(roots, nil, viz.Options{Name: name, RankDir: opts.rankDir}).DOT()

	out := opts.output
	if out == "" {
		out = trimExt(path) + "." + opts.format
	}

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		spin := newSpinner(cmd.Context(), "rendering "+opts.format)
		spin.start()
		if opts.format == "svg" {
			data, err = viz.RenderSVG(dot)
		} else {
			data, err = viz.RenderPNG(dot)
		}
		spin.stop()
		if err != nil {
			printError("render failed")
			return err
		}
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done(fmt.Sprintf("rendered %d tree(s)", len(roots)))
	printSuccess("wrote %s", opts.format)
	printFile(out)
	return nil
}

// trimExt strips the final extension from a path, if any.
func trimExt(path string) string {
	if i := strings.LastIndex(path, "."); i > 0 && !strings.Contains(path[i:], "/") {
		return path[:i]
	}
	return path
}
