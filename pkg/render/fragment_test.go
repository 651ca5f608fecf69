package render

import "testing"

func TestPlain(t *testing.T) {
	tests := []struct {
		s     string
		width int
	}{
		{"", 0},
		{"5", 1},
		{"12", 2},
		{"┃", 1}, // width counts runes, not bytes
	}
	for _, tt := range tests {
		f := Plain(tt.s)
		if f.Text != tt.s || f.Width != tt.width {
			t.Errorf("Plain(%q) = %+v, want width %d", tt.s, f, tt.width)
		}
	}
}

func TestStyled(t *testing.T) {
	f := Styled("5", reverseStyle{})
	if f.Text != "\x1b[7m5\x1b[0m" {
		t.Errorf("styled text = %q", f.Text)
	}
	if f.Width != 1 {
		t.Errorf("styled width = %d, want 1 (markup must not count)", f.Width)
	}

	if got := Styled("5", nil); got != Plain("5") {
		t.Errorf("nil style should fall back to Plain, got %+v", got)
	}
}

func TestJustify(t *testing.T) {
	tests := []struct {
		name  string
		f     Fragment
		field int
		left  bool
		want  string
	}{
		{"right pad", Plain("5"), 3, false, "  5"},
		{"left pad", Plain("5"), 3, true, "5  "},
		{"exact fit", Plain("abc"), 3, false, "abc"},
		{"overflow unpadded", Plain("abcd"), 3, false, "abcd"},
		{"markup pads by reported width", Fragment{Text: "\x1b[7m5\x1b[0m", Width: 1}, 3, false, "  \x1b[7m5\x1b[0m"},
		{"empty", Plain(""), 2, false, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.justify(tt.field, tt.left); got != tt.want {
				t.Errorf("justify = %q, want %q", got, tt.want)
			}
		})
	}
}
