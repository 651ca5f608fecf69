package render

import (
	"strconv"
	"strings"
)

// Table renders the board as a box-drawn text table: a styled header row
// of column indices, the outer frame, data rows with styled gutter
// labels, and heavy/light rules on block/row boundaries. The returned
// string has no trailing newline.
//
// Identical (grid, config) inputs always produce byte-identical output.
// Malformed configuration fails before any rendering work begins.
func Table(grid Grid, cfg Config) (string, error) {
	if err := cfg.validate(grid); err != nil {
		return "", err
	}

	n := grid.Size()
	sep := numberSep(n)
	comp := &compositor{grid: grid, cfg: &cfg, sep: sep}
	field := fieldWidth(grid, &cfg, sep)
	gutter := len(strconv.Itoa(n))
	rules := makeBorders(n, grid.BlockWidth(), field, gutter)

	lines := make([]string, 0, 2*n+3)
	lines = append(lines, headerLine(n, field, gutter, cfg.IndexStyle))
	lines = append(lines, rules.top)

	for row := 0; row < n; row++ {
		lines = append(lines, comp.rowLine(row, field, gutter))
		switch {
		case row == n-1:
			lines = append(lines, rules.bottom)
		case (row+1)%grid.BlockHeight() == 0:
			lines = append(lines, rules.thick)
		default:
			lines = append(lines, rules.thin)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// headerLine builds the column index row: each label centered over its
// column, the whole line passed through the index style.
func headerLine(n, field, gutter int, style Styler) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", gutter+2))
	for i := 1; i <= n; i++ {
		sb.WriteString(center(strconv.Itoa(i), field+3))
	}
	line := sb.String()
	if style != nil {
		return style.Render(line)
	}
	return line
}

// rowLine assembles one data row: gutter label, heavy left edge, each
// cell justified to the field width, separators per block structure.
func (c *compositor) rowLine(row, field, gutter int) string {
	n := c.grid.Size()
	label := strconv.Itoa(row + 1)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", gutter-len(label)))
	if c.cfg.IndexStyle != nil {
		sb.WriteString(c.cfg.IndexStyle.Render(label))
	} else {
		sb.WriteString(label)
	}
	sb.WriteString(" ")
	sb.WriteString(vHeavy)

	for col := 0; col < n; col++ {
		sb.WriteString(" ")
		sb.WriteString(c.fragment(row, col).justify(field, c.cfg.AlignLeft))
		sb.WriteString(" ")
		sb.WriteString(vsep(col, n, c.grid.BlockWidth()))
	}
	return sb.String()
}

// center pads s to width, splitting padding evenly with the extra column
// on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
