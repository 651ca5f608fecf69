package render

import (
	"strconv"
	"strings"
)

// compositor resolves the content of each cell from the provider list
// and the candidate fallback.
type compositor struct {
	grid Grid
	cfg  *Config
	sep  string // candidate separator, derived from the numeric alphabet
}

// numberSep returns the separator joining candidate values: empty while
// every value is a single digit, comma once values can be wider.
func numberSep(n int) string {
	if n > 9 {
		return ","
	}
	return ""
}

// candidateText formats a candidate set: sorted values joined by sep,
// preceded by the configured prefix.
func candidateText(cands []int, sep, prefix string) string {
	parts := make([]string, len(cands))
	for i, v := range cands {
		parts[i] = strconv.Itoa(v)
	}
	return prefix + strings.Join(parts, sep)
}

// fragment resolves one cell: first answering provider wins, then the
// candidate fallback for empty cells, then blank.
func (c *compositor) fragment(row, col int) Fragment {
	for _, p := range c.cfg.Providers {
		if f, ok := p.Cell(row, col); ok {
			return f
		}
	}
	if c.cfg.ShowCandidates && c.grid.Value(row, col) == 0 {
		text := candidateText(c.cfg.Candidates.Candidates(row, col), c.sep, c.cfg.CandidatePrefix)
		return Styled(text, c.cfg.CandidateStyle)
	}
	return Plain("")
}
