package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		rowSep     string
		colSep     string
		singleLine bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current game as a string",
		Long: `Export the current game in the string format accepted by 'load'.

By default cells are printed as one digit string per the classic
encoding. Separators may contain the escape "\n" for a newline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			_, board, _, err := c.currentGame(ctx, store)
			if err != nil {
				return err
			}

			if singleLine {
				fmt.Println(board.EncodeCompact())
				return nil
			}
			fmt.Println(board.Encode(unescapeSep(rowSep), unescapeSep(colSep)))
			printSuccess("Game exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&rowSep, "rowsep", "r", `\n`, "separator between rows")
	cmd.Flags().StringVarP(&colSep, "colsep", "C", "", "separator between cells")
	cmd.Flags().BoolVarP(&singleLine, "single-line", "s", false, "export as one compact line")

	return cmd
}

// unescapeSep turns the literal two characters \n into a newline so
// separators can be passed through shells easily.
func unescapeSep(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
