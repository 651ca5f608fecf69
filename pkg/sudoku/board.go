// Package sudoku implements the puzzle model: block-structured boards,
// candidate computation, conflict detection, backtracking solving, and
// puzzle generation.
//
// A board is an N×N grid of integer values (0 = empty) partitioned into
// blockWidth×blockHeight sub-blocks with blockWidth*blockHeight == N.
// The classic game is 9×9 with 3×3 blocks, but nothing in this package
// assumes that shape.
//
// Coordinates are 0-based (row, col) throughout; command layers convert
// from the 1-based coordinates players type.
package sudoku

import (
	"strconv"
	"strings"

	"github.com/oyasumi/sudoku/pkg/errors"
)

// Coord identifies a single cell.
type Coord struct {
	Row int
	Col int
}

// Board is an N×N grid of cell values partitioned into blocks.
type Board struct {
	blockWidth  int
	blockHeight int
	size        int
	cells       []int // row-major, len size*size
}

// New creates an empty board with the given block dimensions.
// Board size N is blockWidth*blockHeight.
func New(blockWidth, blockHeight int) (*Board, error) {
	if blockWidth <= 0 || blockHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid,
			"block dimensions must be positive, got %dx%d", blockWidth, blockHeight)
	}
	n := blockWidth * blockHeight
	return &Board{
		blockWidth:  blockWidth,
		blockHeight: blockHeight,
		size:        n,
		cells:       make([]int, n*n),
	}, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int { return b.size }

// BlockWidth returns the width of one sub-block.
func (b *Board) BlockWidth() int { return b.blockWidth }

// BlockHeight returns the height of one sub-block.
func (b *Board) BlockHeight() int { return b.blockHeight }

// NumberCount returns how many distinct symbols the board uses, which
// equals its dimension N.
func (b *Board) NumberCount() int { return b.size }

// Value returns the value at (row, col), 0 meaning empty.
// Out-of-range coordinates return 0.
func (b *Board) Value(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0
	}
	return b.cells[row*b.size+col]
}

// Set writes value at (row, col). Zero clears the cell.
func (b *Board) Set(row, col, value int) error {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return errors.New(errors.ErrCodeInvalidMove,
			"coordinate (%d,%d) outside %dx%d board", row, col, b.size, b.size)
	}
	if value < 0 || value > b.size {
		return errors.New(errors.ErrCodeInvalidMove,
			"value %d outside 0..%d", value, b.size)
	}
	b.cells[row*b.size+col] = value
	return nil
}

// Coords enumerates all cell coordinates in row-major order.
func (b *Board) Coords() []Coord {
	out := make([]Coord, 0, b.size*b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			out = append(out, Coord{Row: row, Col: col})
		}
	}
	return out
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Empty returns the number of empty cells.
func (b *Board) Empty() int {
	return b.size*b.size - b.Filled()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]int, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

// Equal reports whether two boards have identical shape and values.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.blockWidth != o.blockWidth || b.blockHeight != o.blockHeight {
		return false
	}
	for i, v := range b.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// blockOrigin returns the top-left coordinate of the block containing (row, col).
func (b *Board) blockOrigin(row, col int) (int, int) {
	return (row / b.blockHeight) * b.blockHeight, (col / b.blockWidth) * b.blockWidth
}

// EncodeCompact serializes the board on a single line in a form
// DecodeBlocks accepts for the same block dimensions: bare digits for
// boards up to size 9, comma-separated values past that (bare digits
// would be ambiguous once values reach 10).
func (b *Board) EncodeCompact() string {
	if b.size > 9 {
		return b.Encode(",", ",")
	}
	return b.Encode("", "")
}

// Decode parses a classic 9×9 board from a string of digits in row-major
// order. '0' and '.' mark empty cells; all other non-digit characters
// (newlines, spaces, separators) are skipped.
func Decode(s string) (*Board, error) {
	return DecodeBlocks(s, 3, 3)
}

// DecodeBlocks parses a board with the given block dimensions. Single-digit
// parsing only works for boards up to size 9; larger boards must be decoded
// from comma-separated values (one row per line).
func DecodeBlocks(s string, blockWidth, blockHeight int) (*Board, error) {
	b, err := New(blockWidth, blockHeight)
	if err != nil {
		return nil, err
	}
	if b.size > 9 {
		return decodeSeparated(s, b)
	}

	i := 0
	for _, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r == '.':
			v = 0
		default:
			continue
		}
		if i >= len(b.cells) {
			return nil, errors.New(errors.ErrCodeInvalidEncoding,
				"too many cells for a %dx%d board", b.size, b.size)
		}
		if v > b.size {
			return nil, errors.New(errors.ErrCodeInvalidEncoding,
				"value %d outside 1..%d", v, b.size)
		}
		b.cells[i] = v
		i++
	}
	if i != len(b.cells) {
		return nil, errors.New(errors.ErrCodeInvalidEncoding,
			"expected %d cells, got %d", len(b.cells), i)
	}
	return b, nil
}

// decodeSeparated parses comma-separated values, one row per line.
func decodeSeparated(s string, b *Board) (*Board, error) {
	i := 0
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" || field == "." {
				field = "0"
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidEncoding, err, "cell %d", i)
			}
			if i >= len(b.cells) {
				return nil, errors.New(errors.ErrCodeInvalidEncoding,
					"too many cells for a %dx%d board", b.size, b.size)
			}
			if v < 0 || v > b.size {
				return nil, errors.New(errors.ErrCodeInvalidEncoding,
					"value %d outside 0..%d", v, b.size)
			}
			b.cells[i] = v
			i++
		}
	}
	if i != len(b.cells) {
		return nil, errors.New(errors.ErrCodeInvalidEncoding,
			"expected %d cells, got %d", len(b.cells), i)
	}
	return b, nil
}

// Encode serializes the board in row-major order. rowSep is inserted
// between rows and colSep between cells of a row. With both separators
// empty and N ≤ 9 the result is the compact digit string accepted by
// Decode.
func (b *Board) Encode(rowSep, colSep string) string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteString(rowSep)
		}
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteString(colSep)
			}
			sb.WriteString(strconv.Itoa(b.cells[row*b.size+col]))
		}
	}
	return sb.String()
}
