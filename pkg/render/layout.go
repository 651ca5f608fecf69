package render

import "unicode/utf8"

// fieldWidth computes the uniform visible column width: the maximum over
// every provider's MaxWidth and, when candidate display is on, the widest
// synthesized candidate text over all empty cells. Minimum is 1 so empty
// boards still produce a grid.
func fieldWidth(grid Grid, cfg *Config, sep string) int {
	field := 1
	for _, p := range cfg.Providers {
		if w := p.MaxWidth(); w > field {
			field = w
		}
	}
	if cfg.ShowCandidates {
		n := grid.Size()
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if grid.Value(row, col) != 0 {
					continue
				}
				text := candidateText(cfg.Candidates.Candidates(row, col), sep, cfg.CandidatePrefix)
				if w := utf8.RuneCountInString(text); w > field {
					field = w
				}
			}
		}
	}
	return field
}
