package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/observability"
	"github.com/oyasumi/sudoku/pkg/session"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// newCommand creates the new command for generating a game.
func (c *CLI) newCommand() *cobra.Command {
	var difficulty float64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new game",
		Long: `Generate a new game with a unique solution.

Difficulty is a number between 0 and 1: higher values clear more cells
and make for a more challenging game. The new game replaces the current
one; archive the current game first with 'save' if you want to keep it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := errors.ValidateDifficulty(difficulty); err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			board, err := sudoku.Generate(ctx, difficulty)
			if err != nil {
				return fmt.Errorf("generate game: %w", err)
			}
			prog.done(fmt.Sprintf("Generated %d-clue puzzle", board.Filled()))
			observability.Game().OnNewGame(ctx, difficulty, board.Filled())

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
			printSuccess("New game generated (difficulty %.2f)", difficulty)
			printNextStep("Place a value", appName+" put <row> <col> <value>")
			printNextStep("Play interactively", appName+" play")
			return nil
		},
	}

	cmd.Flags().Float64VarP(&difficulty, "difficulty", "d", c.Config.Difficulty,
		"difficulty between 0 and 1; higher means more empty cells")

	return cmd
}
