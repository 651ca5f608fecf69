package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/observability"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// checkCommand creates the check command for conflict detection.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the current game for conflicts",
		Args:  cobra.NoArgs,
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
			return c.reportConflicts(ctx, board)
		},
	}

	return cmd
}

// reportConflicts lists every conflict on the board and congratulates on
// a finished game. Coordinates are printed 1-based.
func (c *CLI) reportConflicts(ctx context.Context, board *sudoku.Board) error {
	conflicts := sudoku.FindConflicts(board)
	observability.Game().OnCheck(ctx, len(conflicts))

	for _, cf := range conflicts {
		fmt.Printf("(%d,%d) <== %s ==> (%d,%d) [both %d]\n",
			cf.A.Row+1, cf.A.Col+1,
			StyleWarning.Render("conflict"),
			cf.B.Row+1, cf.B.Col+1,
			cf.Value)
	}
	if len(conflicts) == 0 {
		printSuccess("No conflict detected")
	}

	if board.Empty() == 0 && len(conflicts) == 0 {
		printSuccess("Congratulations, the puzzle is finished!")
		printNextStep("Start another one", appName+" new")
	}
	return nil
}
