// Package render turns a block-structured puzzle board into a styled,
// box-drawn text table for terminal display.
//
// The engine is a pure computation: one call to [Table] reads a board
// snapshot and an ordered list of cell content providers and returns a
// single string. Providers contribute styled text per cell; the first
// provider that answers for a coordinate wins. Empty cells fall back to
// candidate text when enabled, or render blank.
//
// Styled text may embed markup that occupies no columns on screen, so a
// rendered cell is carried through the pipeline as a [Fragment]: the raw
// string paired with its visible width. All alignment math uses the
// visible width, never len of the raw string.
//
// The engine performs no I/O, holds no state between calls, and may be
// used concurrently for distinct boards. It does not validate puzzle
// legality and does not compute candidates; both are supplied by the
// caller.
package render
