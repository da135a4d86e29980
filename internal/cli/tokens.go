package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
)

// tokensCommand creates the tokens command group for managing a document's
// design-token table.
func (c *CLI) tokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage a document's design tokens",
	}

	cmd.AddCommand(tokensListCommand())
	cmd.AddCommand(c.tokensAddCommand())
	cmd.AddCommand(c.tokensRemoveCommand())

	return cmd
}

func tokensListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [document.json]",
		Short: "List design tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens := doc.Tokens()
			if len(tokens) == 0 {
				printInfo("no design tokens")
				return nil
			}
			for _, t := range tokens {
				fmt.Printf("%s %s %s %s\n",
					StyleValue.Render(t.Name),
					StyleDim.Render(string(t.Kind)),
					t.Value,
					StyleDim.Render(document.TokenRef(t.ID)),
				)
			}
			return nil
		},
	}
}

func (c *CLI) tokensAddCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add [document.json] [name] [value]",
		Short: "Add a design token",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name, value := args[0], args[1], args[2]
			k := document.TokenKind(kind)
			if k != document.TokenColor && k != document.TokenFont {
				return errors.New(errors.ErrCodeInvalidToken, "unknown token kind %q (want %s or %s)",
					kind, document.TokenColor, document.TokenFont)
			}
			if k == document.TokenColor {
				if err := errors.ValidateHexColor(value); err != nil {
					return err
				}
			}

			doc, err := document.ReadFile(path)
			if err != nil {
				return err
			}
			t := c.newEditor(doc).AddToken(document.Token{Name: name, Value: value, Kind: k})
			if err := document.WriteFile(doc, "", path); err != nil {
				return err
			}
			printSuccess("Added token %s", name)
			printDetail("reference it as %s", document.TokenRef(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(document.TokenColor), "token kind: color (default), font")

	return cmd
}

func (c *CLI) tokensRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [document.json] [token-id]",
		Short: "Remove a design token",
		Long: `Remove a design token from a document.

Blocks still referencing the removed token fall back to the raw reference
string on export; re-point them at a live token to restore styling.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, id := args[0], args[1]
			doc, err := document.ReadFile(path)
			if err != nil {
				return err
			}
			if !c.newEditor(doc).RemoveToken(id) {
				return errors.New(errors.ErrCodeTokenNotFound, "no token with id %q", id)
			}
			if err := document.WriteFile(doc, "", path); err != nil {
				return err
			}
			printSuccess("Removed token %s", id)
			return nil
		},
	}
}
