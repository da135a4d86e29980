package cli

import (
	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	width      float64 // canvas width; config default when zero
	background string  // canvas background; config default when empty
}

// newCommand creates the new command: write an empty document file with the
// configured canvas defaults.
func (c *CLI) newCommand() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [document.json]",
		Short: "Create an empty document with the configured canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(args[0], opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "canvas width in pixels (default: from config)")
	cmd.Flags().StringVarP(&opts.background, "background", "b", "", "canvas background color (default: from config)")

	return cmd
}

func (c *CLI) runNew(path string, opts newOpts) error {
	canvas := c.Config.CanvasSettings()
	if opts.width > 0 {
		canvas.Width = opts.width
	}
	if opts.background != "" {
		if err := errors.ValidateHexColor(opts.background); err != nil {
			return err
		}
		canvas.BackgroundColor = opts.background
	}

	doc := document.New()
	doc.Canvas = canvas

	if err := document.WriteFile(doc, "", path); err != nil {
		return err
	}
	printSuccess("Created document (%gpx, %s)", canvas.Width, canvas.BackgroundColor)
	printFile(path)
	return nil
}
