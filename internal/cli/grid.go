package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/oyasumi/sudoku/pkg/observability"
	"github.com/oyasumi/sudoku/pkg/render"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// gridOptions selects what the rendered grid shows beyond the values.
type gridOptions struct {
	candidates bool
	conflicts  bool
	overlay    *render.OverlayProvider // optional, listed first
}

// renderGrid draws the current game: givens win over played values, and
// conflict highlighting (when requested) wins over both. Provider order
// establishes that priority.
func (c *CLI) renderGrid(ctx context.Context, board, given *sudoku.Board, opts gridOptions) (string, error) {
	var providers []render.CellProvider
	if opts.overlay != nil {
		providers = append(providers, opts.overlay)
	}
	if opts.conflicts {
		providers = append(providers, render.NewConflictProvider(
			board, conflictPairs(board), styler(c.Config.Styles.Conflict)))
	}
	if given != nil {
		providers = append(providers, render.NewValueProvider(given, styler(c.Config.Styles.Given)))
	}
	providers = append(providers, render.NewValueProvider(board, styler(c.Config.Styles.Value)))

	cfg := render.Config{
		ShowCandidates:  opts.candidates,
		CandidatePrefix: c.Config.CandidatePrefix,
		AlignLeft:       c.Config.AlignLeft,
		IndexStyle:      styler(c.Config.Styles.Index),
		CandidateStyle:  styler(c.Config.Styles.Candidate),
		Providers:       providers,
		Candidates:      board,
	}

	observability.Render().OnRenderStart(ctx, board.Size(), opts.candidates)
	start := time.Now()
	out, err := render.Table(board, cfg)
	observability.Render().OnRenderComplete(ctx, board.Size(), time.Since(start), err)
	return out, err
}

// conflictPairs converts the puzzle package's conflicts to the render
// engine's coordinate pairs.
func conflictPairs(board *sudoku.Board) []render.ConflictPair {
	conflicts := sudoku.FindConflicts(board)
	pairs := make([]render.ConflictPair, len(conflicts))
	for i, cf := range conflicts {
		pairs[i] = render.ConflictPair{
			A:     render.Coord{Row: cf.A.Row, Col: cf.A.Col},
			B:     render.Coord{Row: cf.B.Row, Col: cf.B.Col},
			Value: cf.Value,
		}
	}
	return pairs
}

// printGrid renders and prints the game with a title and fill statistics.
func (c *CLI) printGrid(ctx context.Context, board, given *sudoku.Board, opts gridOptions) error {
	out, err := c.renderGrid(ctx, board, given, opts)
	if err != nil {
		return err
	}
	fmt.Println(StyleTitle.Render("Current Sudoku"))
	fmt.Println(out)

	total := board.Size() * board.Size()
	filled := board.Filled()
	printDetail("Filled: %d/%d (%.2f%%)", filled, total, float64(filled)*100/float64(total))
	return nil
}
