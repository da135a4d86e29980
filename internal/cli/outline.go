package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
	"github.com/SharadhNaidu/mailcanvas/pkg/outline"
)

// outlineOpts holds the command-line flags for the outline command.
type outlineOpts struct {
	output   string // output file path; stdout for dot when empty
	format   string // "dot", "svg", or "png"
	detailed bool   // include geometry and flags in node labels
}

// outlineCommand creates the outline command: render the block hierarchy as a
// node-link diagram for debugging grouping and z-order issues.
func (c *CLI) outlineCommand() *cobra.Command {
	var opts outlineOpts

	cmd := &cobra.Command{
		Use:   "outline [document.json]",
		Short: "Render the block hierarchy as a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOutline(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for dot, derived for svg/png)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry and state flags in labels")

	return cmd
}

func (c *CLI) runOutline(ctx context.Context, path string, opts outlineOpts) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	dot := outline.ToDOT(doc, outline.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		if data, err = outline.RenderSVG(ctx, dot); err != nil {
			return err
		}
	case "png":
		if data, err = outline.RenderPNG(ctx, dot); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg, or png)", opts.format)
	}

	out := opts.output
	if out == "" {
		if opts.format == "dot" {
			fmt.Print(dot)
			return nil
		}
		out = strings.TrimSuffix(filepath.Base(path), ".json") + "." + opts.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	printSuccess("Outline written")
	printFile(out)
	return nil
}
