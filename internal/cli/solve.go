package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/observability"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Show solutions of the current game",
		Long: `Search for solutions of the current game and print them.

The current game is not modified. A generated game always has exactly
one solution; hand-loaded boards may have several, shown up to --max.`,
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

			observability.Game().OnSolveStart(ctx, board.Empty())
			start := time.Now()
			solutions, err := sudoku.SolveAll(ctx, board, max)
			observability.Game().OnSolveComplete(ctx, len(solutions), time.Since(start), err)
			if err != nil {
				return err
			}

			if len(solutions) == 0 {
				printError("No valid solution found for the current game")
				return nil
			}
			for i, sol := range solutions {
				fmt.Println(StyleTitle.Render(fmt.Sprintf("Solution #%d", i+1)))
				out, err := c.renderGrid(ctx, sol, nil, gridOptions{})
				if err != nil {
					return err
				}
				fmt.Println(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&max, "max", "n", 1, "maximum number of solutions to print")

	return cmd
}
