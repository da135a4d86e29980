package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// blocksCommand creates the blocks command: list a document's blocks, either
// as a flat table or in an interactive browser.
func (c *CLI) blocksCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "blocks [document.json]",
		Short: "List the blocks in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}
			if interactive {
				if doc.Len() == 0 {
					printError("No blocks to browse")
					return nil
				}
				return browseBlocks(doc)
			}
			listBlocks(doc)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse blocks interactively")

	return cmd
}

func listBlocks(doc *document.Document) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%d blocks, canvas %gpx", doc.Len(), doc.Canvas.Width)))
	for _, b := range doc.TopLevel() {
		printBlockLine(doc, b, "")
		if b.IsGroup() {
			for _, child := range doc.Children(b.ID) {
				printBlockLine(doc, child, "  ")
			}
		}
	}
}

func printBlockLine(doc *document.Document, b *document.Block, indent string) {
	bounds := doc.AbsoluteBounds(b)
	var flags string
	if !b.Visible {
		flags += " hidden"
	}
	if b.Locked {
		flags += " locked"
	}
	fmt.Printf("%s%s %s %s%s\n",
		indent,
		StyleValue.Render(b.Name),
		StyleDim.Render(string(b.Type)),
		StyleDim.Render(fmt.Sprintf("%g,%g %gx%g z%d",
			bounds.Left, bounds.Top, b.Layout.Width, b.Layout.Height, b.Layout.ZIndex)),
		StyleWarning.Render(flags),
	)
}

func browseBlocks(doc *document.Document) error {
	model := newBlockListModel(doc)
	_, err := tea.NewProgram(model).Run()
	return err
}
