package render

import "github.com/oyasumi/sudoku/pkg/errors"

// Config holds the options for one render call. The zero value renders
// filled values only, right-aligned, with no candidate display and no
// styling; Default returns the configuration matching the classic game
// presentation.
//
// A Config is built immediately before a render call and discarded after;
// nothing in it persists between calls.
type Config struct {
	// ShowCandidates renders candidate text in empty cells no provider
	// claimed. Requires Candidates to be set.
	ShowCandidates bool

	// CandidatePrefix precedes candidate text, marking it apart from
	// filled values (for example to spot naked singles at a glance).
	CandidatePrefix string

	// AlignLeft left-justifies cell content. Default is right-justified.
	AlignLeft bool

	// IndexStyle styles the 1..N header labels and row gutter labels.
	IndexStyle Styler

	// CandidateStyle styles synthesized candidate text.
	CandidateStyle Styler

	// Providers are consulted in order for every cell; the first one to
	// answer wins and later ones are not consulted for that cell.
	Providers []CellProvider

	// Candidates supplies legal values for empty cells when
	// ShowCandidates is set.
	Candidates CandidateSource
}

// Default returns the standard presentation: candidate display off,
// "*" candidate prefix, right alignment, no styles, no providers.
func Default() Config {
	return Config{CandidatePrefix: "*"}
}

// validate rejects malformed configuration before any rendering work.
func (c *Config) validate(grid Grid) error {
	if grid == nil {
		return errors.New(errors.ErrCodeInvalidGrid, "grid is nil")
	}
	n := grid.Size()
	if n <= 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "board size must be positive, got %d", n)
	}
	if err := errors.ValidateBlockDims(grid.BlockWidth(), grid.BlockHeight(), n); err != nil {
		return err
	}
	if c.ShowCandidates && c.Candidates == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "candidate display enabled without a candidate source")
	}
	for i, p := range c.Providers {
		if p == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "provider %d is nil", i)
		}
	}
	return nil
}
