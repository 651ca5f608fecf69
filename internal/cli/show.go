package cli

import (
	"github.com/spf13/cobra"
)

// showCommand creates the show command for displaying the current game.
func (c *CLI) showCommand() *cobra.Command {
	var (
		candidates bool
		conflicts  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current game",
		Long: `Show the current game as a box-drawn grid.

Given cells and played cells are styled differently. With --candidates,
empty cells list their remaining legal values; with --conflicts, cells
participating in a conflict are highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			_, board, given, err := c.currentGame(ctx, store)
			if err != nil {
				return err
			}

			return c.printGrid(ctx, board, given, gridOptions{
				candidates: candidates,
				conflicts:  conflicts,
			})
		},
	}

	cmd.Flags().BoolVarP(&candidates, "candidates", "c", false, "show candidates in empty cells")
	cmd.Flags().BoolVarP(&conflicts, "conflicts", "x", false, "highlight conflicting cells")

	return cmd
}
