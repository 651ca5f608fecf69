package errors

// ValidateDifficulty checks that a generation difficulty is in [0, 1].
func ValidateDifficulty(d float64) error {
	if d < 0 || d > 1 {
		return New(ErrCodeInvalidInput, "difficulty must be between 0 and 1, got %g", d)
	}
	return nil
}

// ValidateCoordinate checks a 1-based (row, column) pair against board size n.
func ValidateCoordinate(n, row, col int) error {
	if row < 1 || row > n {
		return New(ErrCodeInvalidMove, "row must be between 1 and %d, got %d", n, row)
	}
	if col < 1 || col > n {
		return New(ErrCodeInvalidMove, "column must be between 1 and %d, got %d", n, col)
	}
	return nil
}

// ValidateCellValue checks a cell value against board size n.
// Zero is allowed and clears the cell.
func ValidateCellValue(n, value int) error {
	if value < 0 || value > n {
		return New(ErrCodeInvalidMove, "value must be between 0 and %d, got %d", n, value)
	}
	return nil
}

// ValidateBlockDims checks that block dimensions are positive and
// consistent with board size n (blockWidth * blockHeight == n).
func ValidateBlockDims(blockWidth, blockHeight, n int) error {
	if blockWidth <= 0 || blockHeight <= 0 {
		return New(ErrCodeInvalidGrid, "block dimensions must be positive, got %dx%d", blockWidth, blockHeight)
	}
	if blockWidth*blockHeight != n {
		return New(ErrCodeInvalidGrid, "block dimensions %dx%d do not partition a %dx%d board", blockWidth, blockHeight, n, n)
	}
	return nil
}
