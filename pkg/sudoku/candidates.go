package sudoku

// Candidates returns the legal values for the cell at (row, col), sorted
// ascending: every value in 1..N not already present in the cell's row,
// column, or block. Filled cells have no candidates (nil).
func (b *Board) Candidates(row, col int) []int {
	if b.Value(row, col) != 0 {
		return nil
	}

	used := make([]bool, b.size+1)
	for i := 0; i < b.size; i++ {
		used[b.Value(row, i)] = true
		used[b.Value(i, col)] = true
	}
	br, bc := b.blockOrigin(row, col)
	for r := br; r < br+b.blockHeight; r++ {
		for c := bc; c < bc+b.blockWidth; c++ {
			used[b.Value(r, c)] = true
		}
	}

	var out []int
	for v := 1; v <= b.size; v++ {
		if !used[v] {
			out = append(out, v)
		}
	}
	return out
}

// allowed reports whether value may be placed at (row, col) without
// colliding with its row, column, or block.
func (b *Board) allowed(row, col, value int) bool {
	for i := 0; i < b.size; i++ {
		if b.Value(row, i) == value || b.Value(i, col) == value {
			return false
		}
	}
	br, bc := b.blockOrigin(row, col)
	for r := br; r < br+b.blockHeight; r++ {
		for c := bc; c < bc+b.blockWidth; c++ {
			if b.Value(r, c) == value {
				return false
			}
		}
	}
	return true
}
