package render

import (
	"strings"
	"unicode/utf8"
)

// Fragment is a piece of cell content: the raw string as it will be
// emitted (markup included) and the number of terminal columns it
// occupies once the markup is interpreted.
//
// The pair travels through the whole pipeline so visible width is never
// re-derived by parsing markup out of the raw string.
type Fragment struct {
	Text  string
	Width int
}

// Plain returns a Fragment for unstyled text.
func Plain(s string) Fragment {
	return Fragment{Text: s, Width: utf8.RuneCountInString(s)}
}

// Styled returns a Fragment whose text is s rendered through style and
// whose width is that of the unstyled s. A nil style yields Plain(s).
func Styled(s string, style Styler) Fragment {
	if style == nil {
		return Plain(s)
	}
	return Fragment{Text: style.Render(s), Width: utf8.RuneCountInString(s)}
}

// justify pads the raw text to the given visible field width. Padding is
// computed from the fragment's reported width, so embedded markup does
// not skew alignment. Content wider than the field is returned unpadded;
// the field width calculation guarantees that never happens for
// well-behaved providers.
func (f Fragment) justify(field int, alignLeft bool) string {
	pad := field - f.Width
	if pad <= 0 {
		return f.Text
	}
	if alignLeft {
		return f.Text + strings.Repeat(" ", pad)
	}
	return strings.Repeat(" ", pad) + f.Text
}
