package sudoku

import (
	"strings"
	"testing"

	"github.com/oyasumi/sudoku/pkg/errors"
)

const classicPuzzle = "" +
	"003020600" +
	"900305001" +
	"001806400" +
	"008102900" +
	"700000008" +
	"006708200" +
	"002609500" +
	"800203009" +
	"005010300"

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		bw, bh   int
		wantSize int
		wantErr  bool
	}{
		{"classic 3x3", 3, 3, 9, false},
		{"2x2 blocks", 2, 2, 4, false},
		{"3x2 blocks", 3, 2, 6, false},
		{"4x3 blocks", 4, 3, 12, false},
		{"zero width", 0, 3, 0, true},
		{"negative height", 3, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.bw, tt.bh)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d,%d) error = %v, wantErr %v", tt.bw, tt.bh, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Size() != tt.wantSize {
				t.Errorf("Size = %d, want %d", b.Size(), tt.wantSize)
			}
			if b.Filled() != 0 {
				t.Errorf("new board should be empty, has %d filled", b.Filled())
			}
		})
	}
}

func TestSetValue(t *testing.T) {
	b, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Set(0, 0, 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := b.Value(0, 0); got != 5 {
		t.Errorf("Value(0,0) = %d, want 5", got)
	}

	// Zero clears
	if err := b.Set(0, 0, 0); err != nil {
		t.Fatalf("Set(0) failed: %v", err)
	}
	if got := b.Value(0, 0); got != 0 {
		t.Errorf("cell not cleared, Value = %d", got)
	}

	// Out of range coordinates and values
	if err := b.Set(9, 0, 1); !errors.Is(err, errors.ErrCodeInvalidMove) {
		t.Errorf("Set(9,0) error = %v, want INVALID_MOVE", err)
	}
	if err := b.Set(0, 0, 10); !errors.Is(err, errors.ErrCodeInvalidMove) {
		t.Errorf("Set value 10 error = %v, want INVALID_MOVE", err)
	}
	if got := b.Value(-1, 3); got != 0 {
		t.Errorf("out-of-range Value = %d, want 0", got)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	b, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b.Size() != 9 || b.BlockWidth() != 3 || b.BlockHeight() != 3 || b.NumberCount() != 9 {
		t.Fatalf("unexpected shape %dx%d blocks %dx%d", b.Size(), b.Size(), b.BlockWidth(), b.BlockHeight())
	}
	if got := b.Encode("", ""); got != classicPuzzle {
		t.Errorf("round trip mismatch:\ngot  %s\nwant %s", got, classicPuzzle)
	}
	if b.Filled() != 32 {
		t.Errorf("Filled = %d, want 32", b.Filled())
	}
}

func TestDecodeSkipsNoise(t *testing.T) {
	noisy := `
		0 0 3 | 0 2 0 | 6 0 0
		9 . . | 3 . 5 | . . 1
		. 0 1 | 8 0 6 | 4 0 0
		0 0 8 | 1 0 2 | 9 0 0
		7 0 0 | 0 0 0 | 0 0 8
		0 0 6 | 7 0 8 | 2 0 0
		0 0 2 | 6 0 9 | 5 0 0
		8 0 0 | 2 0 3 | 0 0 9
		0 0 5 | 0 1 0 | 3 0 0
	`
	b, err := Decode(noisy)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := b.Encode("", ""); got != classicPuzzle {
		t.Errorf("noisy decode = %s, want %s", got, classicPuzzle)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few cells", "123"},
		{"too many cells", classicPuzzle + "1"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if !errors.Is(err, errors.ErrCodeInvalidEncoding) {
				t.Errorf("Decode(%q) error = %v, want INVALID_ENCODING", tt.input, err)
			}
		})
	}
}

func TestDecodeBlocksValueRange(t *testing.T) {
	// A 4x4 board rejects digits above 4.
	if _, err := DecodeBlocks("1234000000000005", 2, 2); !errors.Is(err, errors.ErrCodeInvalidEncoding) {
		t.Errorf("expected INVALID_ENCODING for oversized value, got %v", err)
	}
	b, err := DecodeBlocks("1000002000030004", 2, 2)
	if err != nil {
		t.Fatalf("DecodeBlocks failed: %v", err)
	}
	if b.Value(3, 3) != 4 {
		t.Errorf("Value(3,3) = %d, want 4", b.Value(3, 3))
	}
}

func TestDecodeSeparated(t *testing.T) {
	// Boards past size 9 decode from comma-separated rows.
	var rows []string
	for r := 0; r < 12; r++ {
		cells := make([]string, 12)
		for c := range cells {
			cells[c] = "0"
		}
		rows = append(rows, strings.Join(cells, ","))
	}
	rows[0] = "12,0,0,0,0,0,0,0,0,0,0,1"

	b, err := DecodeBlocks(strings.Join(rows, "\n"), 4, 3)
	if err != nil {
		t.Fatalf("DecodeBlocks failed: %v", err)
	}
	if b.Value(0, 0) != 12 || b.Value(0, 11) != 1 {
		t.Errorf("corner values = %d, %d", b.Value(0, 0), b.Value(0, 11))
	}

	if got := b.Encode("\n", ","); got != strings.Join(rows, "\n") {
		t.Errorf("separated round trip mismatch:\ngot\n%s", got)
	}

	if _, err := DecodeBlocks("1,2,3", 4, 3); !errors.Is(err, errors.ErrCodeInvalidEncoding) {
		t.Errorf("short separated input error = %v, want INVALID_ENCODING", err)
	}
}

func TestEncodeSeparators(t *testing.T) {
	b, err := DecodeBlocks("1000020000300004", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := "1,0,0,0\n0,2,0,0\n0,0,3,0\n0,0,0,4"
	if got := b.Encode("\n", ","); got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeCompact(t *testing.T) {
	classic, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	if got := classic.EncodeCompact(); got != classicPuzzle {
		t.Errorf("9x9 compact = %s, want bare digits", got)
	}

	// Past size 9 the compact form is comma-separated, so values like 12
	// stay unambiguous, and DecodeBlocks reads it back.
	wide, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := wide.Set(0, 0, 12); err != nil {
		t.Fatal(err)
	}
	if err := wide.Set(11, 11, 1); err != nil {
		t.Fatal(err)
	}

	enc := wide.EncodeCompact()
	if !strings.HasPrefix(enc, "12,") {
		t.Errorf("12x12 compact should be comma-separated, got %s", enc[:16])
	}
	back, err := DecodeBlocks(enc, 4, 3)
	if err != nil {
		t.Fatalf("DecodeBlocks failed on compact form: %v", err)
	}
	if !back.Equal(wide) {
		t.Error("12x12 compact round trip lost cells")
	}
}

func TestCloneIndependence(t *testing.T) {
	b, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}
	if err := c.Set(0, 0, 4); err != nil {
		t.Fatal(err)
	}
	if b.Value(0, 0) != 0 {
		t.Error("mutating the clone changed the original")
	}
	if b.Equal(c) {
		t.Error("boards should differ after the clone mutates")
	}
}

func TestEqualShapeMismatch(t *testing.T) {
	a, _ := New(3, 2)
	b, _ := New(2, 3)
	if a.Equal(b) {
		t.Error("6x6 boards with different block shapes are not equal")
	}
	if a.Equal(nil) {
		t.Error("nil is never equal")
	}
}

func TestFilledEmpty(t *testing.T) {
	b, _ := New(2, 2)
	if b.Empty() != 16 {
		t.Errorf("Empty = %d, want 16", b.Empty())
	}
	_ = b.Set(1, 1, 3)
	if b.Filled() != 1 || b.Empty() != 15 {
		t.Errorf("Filled/Empty = %d/%d, want 1/15", b.Filled(), b.Empty())
	}
}
