package sudoku

import (
	"context"
	"sync"
)

// Solve returns one solution of b, or ok=false when the board has none.
// The search fans the candidates of the most constrained cell across
// goroutines; the first branch to complete wins and cancels the rest.
// The input board is not modified.
func Solve(ctx context.Context, b *Board) (*Board, bool, error) {
	if len(FindConflicts(b)) > 0 {
		return nil, false, nil
	}

	row, col, ok := b.mostConstrained()
	if !ok {
		return b.Clone(), true, nil // already complete
	}
	cands := b.Candidates(row, col)
	if len(cands) == 0 {
		return nil, false, nil
	}

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan *Board, len(cands))
	var wg sync.WaitGroup
	for _, v := range cands {
		branch := b.Clone()
		branch.cells[row*branch.size+col] = v
		wg.Add(1)
		go func(board *Board) {
			defer wg.Done()
			_ = board.backtrack(branchCtx, func(sol *Board) bool {
				select {
				case results <- sol:
				case <-branchCtx.Done():
				}
				return false // one solution per branch is enough
			})
		}(branch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	select {
	case sol, open := <-results:
		if !open {
			return nil, false, ctx.Err()
		}
		cancel()
		return sol, true, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// SolveAll returns up to max solutions in deterministic (ascending
// placement) order. max <= 0 means a single solution.
func SolveAll(ctx context.Context, b *Board, max int) ([]*Board, error) {
	if max <= 0 {
		max = 1
	}
	if len(FindConflicts(b)) > 0 {
		return nil, nil
	}
	var out []*Board
	err := b.Clone().backtrack(ctx, func(sol *Board) bool {
		out = append(out, sol)
		return len(out) < max
	})
	return out, err
}

// CountSolutions counts solutions, stopping at limit. It is primarily
// used by the generator to test uniqueness with limit=2.
func CountSolutions(ctx context.Context, b *Board, limit int) (int, error) {
	if limit <= 0 {
		limit = 1
	}
	if len(FindConflicts(b)) > 0 {
		return 0, nil
	}
	n := 0
	err := b.Clone().backtrack(ctx, func(*Board) bool {
		n++
		return n < limit
	})
	return n, err
}

// mostConstrained returns the empty cell with the fewest candidates.
// ok is false when the board is full.
func (b *Board) mostConstrained() (row, col int, ok bool) {
	best := b.size + 1
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.Value(r, c) != 0 {
				continue
			}
			n := len(b.Candidates(r, c))
			if n < best {
				row, col, ok = r, c, true
				best = n
				if best == 0 {
					return
				}
			}
		}
	}
	return
}

// backtrack recursively fills b in place, invoking emit with a clone of
// every completed solution. emit returns false to stop the search.
// The returned error is only ever the context's error.
func (b *Board) backtrack(ctx context.Context, emit func(*Board) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, col, ok := b.mostConstrained()
	if !ok {
		emit(b.Clone())
		return nil
	}

	for _, v := range b.Candidates(row, col) {
		b.cells[row*b.size+col] = v
		stop := false
		err := b.backtrack(ctx, func(sol *Board) bool {
			if !emit(sol) {
				stop = true
			}
			return !stop
		})
		b.cells[row*b.size+col] = 0
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
