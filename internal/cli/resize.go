package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// resizeOpts holds the command-line flags for the resize command.
type resizeOpts struct {
	width      float64 // explicit target width
	breakpoint string  // named breakpoint (desktop, mobile)
	output     string  // output file; in-place when empty
}

// resizeCommand creates the resize command: re-target a document to a new
// canvas width, repositioning every top-level block per its anchors.
func (c *CLI) resizeCommand() *cobra.Command {
	var opts resizeOpts

	cmd := &cobra.Command{
		Use:   "resize [document.json]",
		Short: "Resize a document's canvas, resolving block constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := c.targetWidth(opts)
			if err != nil {
				return err
			}
			return c.runResize(args[0], width, opts.output)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "target canvas width in pixels")
	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "named breakpoint: desktop, mobile")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// targetWidth resolves --width / --breakpoint into a single target. Exactly
// one of the two must be given.
func (c *CLI) targetWidth(opts resizeOpts) (float64, error) {
	switch {
	case opts.width > 0 && opts.breakpoint != "":
		return 0, fmt.Errorf("--width and --breakpoint are mutually exclusive")
	case opts.width > 0:
		return opts.width, nil
	case opts.breakpoint != "":
		width, ok := c.Config.BreakpointWidth(opts.breakpoint)
		if !ok {
			return 0, fmt.Errorf("unknown breakpoint %q (want desktop or mobile)", opts.breakpoint)
		}
		return width, nil
	default:
		return 0, fmt.Errorf("one of --width or --breakpoint is required")
	}
}

func (c *CLI) runResize(path string, width float64, output string) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	oldWidth := doc.Canvas.Width
	c.newEditor(doc).ResizeCanvas(width)

	if output == "" {
		output = path
	}
	if err := document.WriteFile(doc, "", output); err != nil {
		return err
	}
	printSuccess("Resized canvas %gpx %s %gpx", oldWidth, iconArrow, width)
	printFile(output)
	return nil
}
