package sudoku

// Conflict records two filled cells that share a value and a row, column,
// or block. A is always row-major-before B.
type Conflict struct {
	A     Coord
	B     Coord
	Value int
}

// FindConflicts returns every pairwise conflict on the board, ordered by
// the first cell's row-major position. Each unordered pair appears once.
func FindConflicts(b *Board) []Conflict {
	var out []Conflict
	seen := make(map[[2]int]bool)

	add := func(a, c Coord, v int) {
		ai := a.Row*b.size + a.Col
		ci := c.Row*b.size + c.Col
		if ai > ci {
			a, c = c, a
			ai, ci = ci, ai
		}
		key := [2]int{ai, ci}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Conflict{A: a, B: c, Value: v})
	}

	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			v := b.Value(row, col)
			if v == 0 {
				continue
			}
			here := Coord{Row: row, Col: col}

			for i := 0; i < b.size; i++ {
				if i != col && b.Value(row, i) == v {
					add(here, Coord{Row: row, Col: i}, v)
				}
				if i != row && b.Value(i, col) == v {
					add(here, Coord{Row: i, Col: col}, v)
				}
			}
			br, bc := b.blockOrigin(row, col)
			for r := br; r < br+b.blockHeight; r++ {
				for c := bc; c < bc+b.blockWidth; c++ {
					if (r != row || c != col) && b.Value(r, c) == v {
						add(here, Coord{Row: r, Col: c}, v)
					}
				}
			}
		}
	}
	return out
}
