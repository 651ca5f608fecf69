package sudoku

import "testing"

func TestFindConflictsNone(t *testing.T) {
	b, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	if got := FindConflicts(b); len(got) != 0 {
		t.Errorf("valid puzzle has %d conflicts: %v", len(got), got)
	}

	empty, _ := New(3, 3)
	if got := FindConflicts(empty); len(got) != 0 {
		t.Errorf("empty board has %d conflicts", len(got))
	}
}

func TestFindConflictsRow(t *testing.T) {
	b, _ := New(3, 3)
	_ = b.Set(2, 1, 7)
	_ = b.Set(2, 6, 7)

	got := FindConflicts(b)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(got), got)
	}
	cf := got[0]
	if cf.A != (Coord{Row: 2, Col: 1}) || cf.B != (Coord{Row: 2, Col: 6}) || cf.Value != 7 {
		t.Errorf("conflict = %+v", cf)
	}
}

func TestFindConflictsColumnAndBlock(t *testing.T) {
	b, _ := New(3, 3)
	_ = b.Set(0, 4, 3)
	_ = b.Set(5, 4, 3) // same column
	_ = b.Set(4, 3, 3) // same block as (5,4)

	got := FindConflicts(b)
	// (0,4)-(5,4) column, (4,3)-(5,4) block; (0,4)-(4,3) share nothing.
	if len(got) != 2 {
		t.Fatalf("expected 2 conflicts, got %d: %v", len(got), got)
	}
	if got[0].A != (Coord{Row: 0, Col: 4}) || got[0].B != (Coord{Row: 5, Col: 4}) {
		t.Errorf("first conflict = %+v", got[0])
	}
	if got[1].A != (Coord{Row: 4, Col: 3}) || got[1].B != (Coord{Row: 5, Col: 4}) {
		t.Errorf("second conflict = %+v", got[1])
	}
}

func TestFindConflictsDeduplicated(t *testing.T) {
	// Two equal values in the same row AND block report one conflict.
	b, _ := New(3, 3)
	_ = b.Set(0, 0, 9)
	_ = b.Set(0, 1, 9)

	got := FindConflicts(b)
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated conflict, got %d: %v", len(got), got)
	}
}

func TestFindConflictsOrdering(t *testing.T) {
	// A is always the row-major earlier cell, and conflicts are listed by
	// A's position.
	b, _ := New(3, 3)
	_ = b.Set(8, 8, 1)
	_ = b.Set(8, 0, 1)
	_ = b.Set(0, 0, 2)
	_ = b.Set(0, 8, 2)

	got := FindConflicts(b)
	if len(got) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(got))
	}
	for i, cf := range got {
		ai := cf.A.Row*9 + cf.A.Col
		bi := cf.B.Row*9 + cf.B.Col
		if ai >= bi {
			t.Errorf("conflict %d: A %+v not before B %+v", i, cf.A, cf.B)
		}
	}
	if got[0].Value != 2 || got[1].Value != 1 {
		t.Errorf("conflicts out of scan order: %v", got)
	}
}
