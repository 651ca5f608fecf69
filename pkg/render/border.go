package render

import "strings"

// Box-drawing characters for the frame and rules. The outer frame and
// block boundaries are heavy, in-block separators light.
const (
	heavyBar = "━"
	lightBar = "─"

	vHeavy = "┃"
	vLight = "│"
)

// junction sets per horizontal rule kind: [left edge, in-block junction,
// block-boundary junction, right edge].
var (
	topJunctions    = [4]string{"┏", "┯", "┳", "┓"}
	thickJunctions  = [4]string{"┣", "┿", "╋", "┫"}
	thinJunctions   = [4]string{"┠", "┼", "╂", "┨"}
	bottomJunctions = [4]string{"┗", "┷", "┻", "┛"}
)

// borders holds the four horizontal rule strings of a table. Vertical
// separators are interleaved during row assembly by vsep.
type borders struct {
	top    string
	thick  string // between block rows
	thin   string // between ordinary rows
	bottom string
}

// makeBorders synthesizes the horizontal rules for an n-column table
// with the given block width, visible field width, and gutter width.
// Structure depends only on these dimensions, never on cell content.
func makeBorders(n, blockWidth, field, gutter int) borders {
	return borders{
		top:    makeRule(n, blockWidth, field, gutter, heavyBar, topJunctions),
		thick:  makeRule(n, blockWidth, field, gutter, heavyBar, thickJunctions),
		thin:   makeRule(n, blockWidth, field, gutter, lightBar, thinJunctions),
		bottom: makeRule(n, blockWidth, field, gutter, heavyBar, bottomJunctions),
	}
}

// makeRule builds one horizontal rule: a gutter-aligned left edge, a
// field+2 wide segment per column, and a junction after each column that
// is heavy on block boundaries.
func makeRule(n, blockWidth, field, gutter int, bar string, junctions [4]string) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", gutter+1))
	sb.WriteString(junctions[0])
	segment := strings.Repeat(bar, field+2)
	for col := 0; col < n; col++ {
		sb.WriteString(segment)
		switch {
		case col == n-1:
			sb.WriteString(junctions[3])
		case (col+1)%blockWidth == 0:
			sb.WriteString(junctions[2])
		default:
			sb.WriteString(junctions[1])
		}
	}
	return sb.String()
}

// vsep returns the vertical separator following col: heavy after each
// block (and at the table edge), light inside a block.
func vsep(col, n, blockWidth int) string {
	if col == n-1 || (col+1)%blockWidth == 0 {
		return vHeavy
	}
	return vLight
}
