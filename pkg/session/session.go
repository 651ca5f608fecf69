// Package session persists sudoku games between command invocations.
//
// Every CLI command is a separate process, so the current game lives in a
// store between commands. Two backends are provided:
//   - FileStore: JSON files in a config directory, for normal CLI use
//   - RedisStore: a shared Redis instance, for games followed from
//     several machines
//
// CLIStore pins the single "current" game slot the commands operate on.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// Game is one stored sudoku game: the live board plus the snapshot of
// the generated givens, both in encoded string form, together with the
// block shape needed to decode them.
type Game struct {
	ID          string    `json:"id"`
	Board       string    `json:"board"`
	Given       string    `json:"given"`
	BlockWidth  int       `json:"block_width"`
	BlockHeight int       `json:"block_height"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates a Game from a board and its given snapshot.
func New(board, given *sudoku.Board) *Game {
	now := time.Now().UTC()
	return &Game{
		ID:          uuid.NewString(),
		Board:       board.EncodeCompact(),
		Given:       given.EncodeCompact(),
		BlockWidth:  board.BlockWidth(),
		BlockHeight: board.BlockHeight(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// blockShape returns the stored block dimensions, falling back to the
// classic 3×3 for records written before the shape was persisted.
func (g *Game) blockShape() (int, int) {
	if g.BlockWidth <= 0 || g.BlockHeight <= 0 {
		return 3, 3
	}
	return g.BlockWidth, g.BlockHeight
}

// Boards decodes the stored board and given snapshot.
func (g *Game) Boards() (board, given *sudoku.Board, err error) {
	bw, bh := g.blockShape()
	board, err = sudoku.DecodeBlocks(g.Board, bw, bh)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "stored board %s is corrupt", g.ID)
	}
	given, err = sudoku.DecodeBlocks(g.Given, bw, bh)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "stored given snapshot %s is corrupt", g.ID)
	}
	return board, given, nil
}

// Update replaces the stored board and bumps the modification time.
func (g *Game) Update(board *sudoku.Board) {
	g.Board = board.EncodeCompact()
	g.BlockWidth = board.BlockWidth()
	g.BlockHeight = board.BlockHeight()
	g.UpdatedAt = time.Now().UTC()
}

// Store is the interface for game storage backends.
type Store interface {
	// Get retrieves a game by ID. Returns nil, nil when absent.
	Get(ctx context.Context, id string) (*Game, error)

	// Set stores a game under its ID.
	Set(ctx context.Context, game *Game) error

	// Delete removes a game. Deleting an absent game is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored games, most recently updated first.
	List(ctx context.Context) ([]*Game, error)

	// Cleanup removes games untouched for longer than maxAge and
	// returns how many were removed.
	Cleanup(ctx context.Context, maxAge time.Duration) (int, error)
}
