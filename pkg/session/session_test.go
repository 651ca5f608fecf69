package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oyasumi/sudoku/pkg/sudoku"
)

const testPuzzle = "" +
	"003020600" +
	"900305001" +
	"001806400" +
	"008102900" +
	"700000008" +
	"006708200" +
	"002609500" +
	"800203009" +
	"005010300"

func testGame(t *testing.T) *Game {
	t.Helper()
	board, err := sudoku.Decode(testPuzzle)
	require.NoError(t, err)
	return New(board, board.Clone())
}

func TestNewGame(t *testing.T) {
	g := testGame(t)

	require.NotEmpty(t, g.ID)
	require.Equal(t, testPuzzle, g.Board)
	require.Equal(t, testPuzzle, g.Given)
	require.False(t, g.CreatedAt.IsZero())
	require.Equal(t, g.CreatedAt, g.UpdatedAt)

	// IDs are unique per game
	other := testGame(t)
	require.NotEqual(t, g.ID, other.ID)
}

func TestGameBoards(t *testing.T) {
	g := testGame(t)

	board, given, err := g.Boards()
	require.NoError(t, err)
	require.Equal(t, testPuzzle, board.Encode("", ""))
	require.True(t, board.Equal(given))

	// Decoded boards are independent copies.
	require.NoError(t, board.Set(0, 0, 4))
	again, _, err := g.Boards()
	require.NoError(t, err)
	require.Equal(t, 0, again.Value(0, 0))
}

func TestGameBoardsKeepBlockShape(t *testing.T) {
	// Boards with non-classic block shapes survive the save round trip;
	// the record carries the dimensions its strings must be decoded with.
	tests := []struct {
		name   string
		bw, bh int
		row    int
		col    int
		value  int
	}{
		{"4x4 2x2 blocks", 2, 2, 1, 2, 4},
		{"6x6 3x2 blocks", 3, 2, 5, 5, 6},
		{"12x12 4x3 blocks", 4, 3, 0, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := sudoku.New(tt.bw, tt.bh)
			require.NoError(t, err)
			require.NoError(t, board.Set(tt.row, tt.col, tt.value))

			g := New(board, board.Clone())
			require.Equal(t, tt.bw, g.BlockWidth)
			require.Equal(t, tt.bh, g.BlockHeight)

			got, given, err := g.Boards()
			require.NoError(t, err)
			require.Equal(t, tt.bw, got.BlockWidth())
			require.Equal(t, tt.bh, got.BlockHeight())
			require.True(t, got.Equal(board))
			require.True(t, given.Equal(board))

			// Update keeps the shape intact.
			g.Update(got)
			again, _, err := g.Boards()
			require.NoError(t, err)
			require.True(t, again.Equal(board))
		})
	}
}

func TestGameBoardsLegacyRecord(t *testing.T) {
	// Records written before the block shape was stored decode as the
	// classic 9x9 game.
	g := testGame(t)
	g.BlockWidth, g.BlockHeight = 0, 0

	board, _, err := g.Boards()
	require.NoError(t, err)
	require.Equal(t, 9, board.Size())
	require.Equal(t, 3, board.BlockWidth())
}

func TestGameBoardsCorrupt(t *testing.T) {
	g := testGame(t)
	g.Board = "not a board"
	_, _, err := g.Boards()
	require.Error(t, err)
}

func TestGameUpdate(t *testing.T) {
	g := testGame(t)
	created := g.CreatedAt

	board, _, err := g.Boards()
	require.NoError(t, err)
	require.NoError(t, board.Set(0, 0, 4))
	g.Update(board)

	updated, _, err := g.Boards()
	require.NoError(t, err)
	require.Equal(t, 4, updated.Value(0, 0))
	require.Equal(t, created, g.CreatedAt)
	require.False(t, g.UpdatedAt.Before(created))

	// The given snapshot never changes.
	require.Equal(t, testPuzzle, g.Given)
}
