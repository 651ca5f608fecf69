package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/session"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// loadCommand creates the load command for importing a board.
func (c *CLI) loadCommand() *cobra.Command {
	var (
		blockWidth  int
		blockHeight int
	)

	cmd := &cobra.Command{
		Use:   "load <board>",
		Short: "Load a board from its string encoding",
		Long: `Load a board from a string and make it the current game.

For the classic 9x9 game the string holds 81 digits in row-major order,
with '0' or '.' marking empty cells; whitespace and other separators are
ignored. Boards larger than 9x9 use comma-separated values, one row per
line, and need --block-width/--block-height.

The loaded cells become the givens of the new game.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			n := blockWidth * blockHeight
			if err := errors.ValidateBlockDims(blockWidth, blockHeight, n); err != nil {
				return err
			}

			board, err := sudoku.DecodeBlocks(args[0], blockWidth, blockHeight)
			if err != nil {
				return err
			}

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.SaveCurrent(ctx, session.New(board, board.Clone())); err != nil {
				return fmt.Errorf("save game: %w", err)
			}

			if err := c.printGrid(ctx, board, nil, gridOptions{}); err != nil {
				return err
			}
			printSuccess("Board loaded as the current game")
			printNextStep("Check it for conflicts", appName+" check")
			return nil
		},
	}

	cmd.Flags().IntVarP(&blockWidth, "block-width", "W", 3, "width of one sub-block")
	cmd.Flags().IntVarP(&blockHeight, "block-height", "H", 3, "height of one sub-block")

	return cmd
}
