package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/observability"
)

// putCommand creates the put command for placing a value.
func (c *CLI) putCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <row> <col> <value>",
		Short: "Place a value on the board",
		Long: `Place a value at a 1-based (row, column) coordinate.

Value 0 clears the cell. Cells that belong to the generated givens
cannot be changed. After the move the grid is shown and conflicts are
reported.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			row, col, value, err := parseMove(args)
			if err != nil {
				return err
			}

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			game, board, given, err := c.currentGame(ctx, store)
			if err != nil {
				return err
			}

			n := board.Size()
			if err := errors.ValidateCoordinate(n, row, col); err != nil {
				return err
			}
			if err := errors.ValidateCellValue(n, value); err != nil {
				return err
			}
			if given.Value(row-1, col-1) != 0 {
				printWarning("Cell (%d,%d) is a given and cannot be changed", row, col)
				return nil
			}

			if err := board.Set(row-1, col-1, value); err != nil {
				return err
			}
			observability.Game().OnMove(ctx, row-1, col-1, value)

			game.Update(board)
			if err := store.SaveCurrent(ctx, game); err != nil {
				return fmt.Errorf("save game: %w", err)
			}

			if err := c.printGrid(ctx, board, given, gridOptions{conflicts: true}); err != nil {
				return err
			}
			return c.reportConflicts(ctx, board)
		},
	}

	return cmd
}

// parseMove parses the three positional put arguments.
func parseMove(args []string) (row, col, value int, err error) {
	parse := func(name, s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
		}
		return v, nil
	}
	if row, err = parse("row", args[0]); err != nil {
		return
	}
	if col, err = parse("column", args[1]); err != nil {
		return
	}
	value, err = parse("value", args[2])
	return
}
