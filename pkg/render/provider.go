package render

import "strconv"

// Grid is the read-only board access the engine needs. The board is
// borrowed for the duration of one render call and never mutated.
type Grid interface {
	// Value returns the cell value at (row, col), 0 meaning empty.
	Value(row, col int) int
	// Size returns the board dimension N.
	Size() int
	// BlockWidth returns the width of one sub-block.
	BlockWidth() int
	// BlockHeight returns the height of one sub-block.
	BlockHeight() int
}

// CandidateSource supplies the legal values remaining for an empty cell.
// It is consulted only when candidate display is enabled.
type CandidateSource interface {
	Candidates(row, col int) []int
}

// Styler renders text with style markup attached. lipgloss.Style
// satisfies it. A nil Styler anywhere in this package means plain text.
type Styler interface {
	Render(strs ...string) string
}

// Coord identifies a cell for providers keyed by position.
type Coord struct {
	Row int
	Col int
}

// CellProvider is a pluggable source of per-cell display content.
//
// Implementations must be pure functions of their captured state: Cell
// may be called any number of times in any order, Width must report the
// visible width of exactly what Cell returns (0 when Cell answers
// false), and MaxWidth must equal the maximum Width over all
// coordinates. The engine does not detect violations; a provider that
// misreports widths visibly corrupts alignment.
type CellProvider interface {
	// Cell returns the content for (row, col), or ok=false when this
	// provider has nothing to say about that cell.
	Cell(row, col int) (Fragment, bool)

	// Width returns the visible width of the fragment Cell would return,
	// or 0 when Cell would answer false.
	Width(row, col int) int

	// MaxWidth returns the maximum Width over all coordinates this
	// provider answers for.
	MaxWidth() int
}

// =============================================================================
// ValueProvider
// =============================================================================

// ValueProvider renders the non-zero values of a board with a uniform
// style. Listing a provider for the original givens ahead of one for the
// current board makes givens win the cell.
type ValueProvider struct {
	grid  Grid
	style Styler
}

// NewValueProvider creates a provider for the board's filled cells.
func NewValueProvider(grid Grid, style Styler) *ValueProvider {
	return &ValueProvider{grid: grid, style: style}
}

// Cell implements CellProvider.
func (p *ValueProvider) Cell(row, col int) (Fragment, bool) {
	v := p.grid.Value(row, col)
	if v == 0 {
		return Fragment{}, false
	}
	return Styled(strconv.Itoa(v), p.style), true
}

// Width implements CellProvider.
func (p *ValueProvider) Width(row, col int) int {
	v := p.grid.Value(row, col)
	if v == 0 {
		return 0
	}
	return len(strconv.Itoa(v))
}

// MaxWidth implements CellProvider.
func (p *ValueProvider) MaxWidth() int {
	max := 0
	n := p.grid.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if w := p.Width(row, col); w > max {
				max = w
			}
		}
	}
	return max
}

// =============================================================================
// ConflictProvider
// =============================================================================

// ConflictPair names two cells that hold the same value in a shared row,
// column, or block, as reported by an external conflict finder.
type ConflictPair struct {
	A     Coord
	B     Coord
	Value int
}

// ConflictProvider highlights cells participating in at least one
// conflict. The flagged coordinate set is computed once at construction
// and is not invalidated if the board mutates afterwards; construct the
// provider immediately before rendering.
type ConflictProvider struct {
	grid    Grid
	style   Styler
	flagged map[Coord]bool
}

// NewConflictProvider creates a provider from externally detected
// conflicts. Both endpoints of every pair are flagged.
func NewConflictProvider(grid Grid, conflicts []ConflictPair, style Styler) *ConflictProvider {
	flagged := make(map[Coord]bool, len(conflicts)*2)
	for _, c := range conflicts {
		flagged[c.A] = true
		flagged[c.B] = true
	}
	return &ConflictProvider{grid: grid, style: style, flagged: flagged}
}

// Cell implements CellProvider.
func (p *ConflictProvider) Cell(row, col int) (Fragment, bool) {
	if !p.flagged[Coord{Row: row, Col: col}] {
		return Fragment{}, false
	}
	return Styled(strconv.Itoa(p.grid.Value(row, col)), p.style), true
}

// Width implements CellProvider.
func (p *ConflictProvider) Width(row, col int) int {
	if !p.flagged[Coord{Row: row, Col: col}] {
		return 0
	}
	return len(strconv.Itoa(p.grid.Value(row, col)))
}

// MaxWidth implements CellProvider.
func (p *ConflictProvider) MaxWidth() int {
	max := 0
	for c := range p.flagged {
		if w := p.Width(c.Row, c.Col); w > max {
			max = w
		}
	}
	return max
}

// =============================================================================
// OverlayProvider
// =============================================================================

// OverlayProvider maps coordinates to arbitrary pre-built fragments, for
// ad hoc annotations such as cursor highlights or hint markers. The map
// is captured at construction; it must not be mutated afterwards.
type OverlayProvider struct {
	cells map[Coord]Fragment
	max   int
}

// NewOverlayProvider creates a provider over a fixed coordinate map.
func NewOverlayProvider(cells map[Coord]Fragment) *OverlayProvider {
	max := 0
	for _, f := range cells {
		if f.Width > max {
			max = f.Width
		}
	}
	return &OverlayProvider{cells: cells, max: max}
}

// NewTextOverlay creates an overlay from plain strings styled uniformly.
func NewTextOverlay(texts map[Coord]string, style Styler) *OverlayProvider {
	cells := make(map[Coord]Fragment, len(texts))
	for c, s := range texts {
		cells[c] = Styled(s, style)
	}
	return NewOverlayProvider(cells)
}

// Cell implements CellProvider.
func (p *OverlayProvider) Cell(row, col int) (Fragment, bool) {
	f, ok := p.cells[Coord{Row: row, Col: col}]
	return f, ok
}

// Width implements CellProvider.
func (p *OverlayProvider) Width(row, col int) int {
	return p.cells[Coord{Row: row, Col: col}].Width
}

// MaxWidth implements CellProvider.
func (p *OverlayProvider) MaxWidth() int { return p.max }
