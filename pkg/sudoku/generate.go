package sudoku

import (
	"context"
	"math/rand"
	"time"

	"github.com/oyasumi/sudoku/pkg/errors"
)

// Generate creates a classic 9×9 puzzle with a unique solution.
// difficulty is in [0, 1]: higher values clear more cells. With
// difficulty d, at least (1-d)*N² cells stay filled, subject to the
// uniqueness constraint.
func Generate(ctx context.Context, difficulty float64) (*Board, error) {
	return GenerateSeeded(ctx, difficulty, time.Now().UnixNano())
}

// GenerateSeeded is Generate with a fixed random seed, for reproducible
// puzzles and tests.
func GenerateSeeded(ctx context.Context, difficulty float64, seed int64) (*Board, error) {
	if err := errors.ValidateDifficulty(difficulty); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	b, err := New(3, 3)
	if err != nil {
		return nil, err
	}
	if err := b.fillRandom(ctx, rng); err != nil {
		return nil, err
	}

	minFilled := int((1 - difficulty) * float64(b.size*b.size))
	if err := b.dig(ctx, rng, minFilled); err != nil {
		return nil, err
	}
	return b, nil
}

// fillRandom completes the board with a randomized backtracking fill.
func (b *Board) fillRandom(ctx context.Context, rng *rand.Rand) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, col, ok := b.mostConstrained()
	if !ok {
		return nil
	}
	cands := b.Candidates(row, col)
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

	for _, v := range cands {
		b.cells[row*b.size+col] = v
		if err := b.fillRandom(ctx, rng); err == nil {
			return nil
		} else if err != errDeadEnd {
			return err
		}
		b.cells[row*b.size+col] = 0
	}
	return errDeadEnd
}

// errDeadEnd signals a fill branch with no completion; it never escapes
// this file.
var errDeadEnd = errors.New(errors.ErrCodeInternal, "dead end")

// dig clears random cells while the solution stays unique, stopping once
// at most minFilled cells remain filled or no cell can be cleared.
func (b *Board) dig(ctx context.Context, rng *rand.Rand, minFilled int) error {
	coords := b.Coords()
	rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })

	for _, c := range coords {
		if b.Filled() <= minFilled {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		v := b.Value(c.Row, c.Col)
		if v == 0 {
			continue
		}
		b.cells[c.Row*b.size+c.Col] = 0
		n, err := CountSolutions(ctx, b, 2)
		if err != nil {
			return err
		}
		if n != 1 {
			b.cells[c.Row*b.size+c.Col] = v
		}
	}
	return nil
}
