package sudoku

import (
	"context"
	"testing"
	"time"
)

const classicSolution = "" +
	"483921657" +
	"967345821" +
	"251876493" +
	"548132976" +
	"729564138" +
	"136798245" +
	"372689514" +
	"814253769" +
	"695417382"

func TestSolveClassic(t *testing.T) {
	b, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}

	sol, ok, err := Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !ok {
		t.Fatal("puzzle should be solvable")
	}
	if got := sol.Encode("", ""); got != classicSolution {
		t.Errorf("solution mismatch:\ngot  %s\nwant %s", got, classicSolution)
	}

	// The input board is untouched.
	if got := b.Encode("", ""); got != classicPuzzle {
		t.Errorf("Solve modified its input: %s", got)
	}
}

func TestSolveComplete(t *testing.T) {
	b, err := Decode(classicSolution)
	if err != nil {
		t.Fatal(err)
	}
	sol, ok, err := Solve(context.Background(), b)
	if err != nil || !ok {
		t.Fatalf("Solve on complete board: ok=%v err=%v", ok, err)
	}
	if !sol.Equal(b) {
		t.Error("complete board should solve to itself")
	}
}

func TestSolveConflictedBoard(t *testing.T) {
	b, _ := New(3, 3)
	_ = b.Set(0, 0, 5)
	_ = b.Set(0, 8, 5)

	_, ok, err := Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if ok {
		t.Error("a board with conflicting givens has no solution")
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, _ := New(3, 3)
	_, _, err := Solve(ctx, b)
	if err != context.Canceled {
		t.Errorf("Solve on cancelled context error = %v, want context.Canceled", err)
	}
}

func TestSolveAllDeterministic(t *testing.T) {
	b, _ := New(2, 2)
	_ = b.Set(0, 0, 1)

	first, err := SolveAll(context.Background(), b, 3)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 solutions, got %d", len(first))
	}

	again, err := SolveAll(context.Background(), b, 3)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	for i := range first {
		if !first[i].Equal(again[i]) {
			t.Errorf("solution %d differs between runs", i)
		}
	}
}

func TestSolveAllSolutionsValid(t *testing.T) {
	b, _ := New(2, 2)
	_ = b.Set(1, 2, 4)

	sols, err := SolveAll(context.Background(), b, 5)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(sols) != 5 {
		t.Fatalf("expected 5 solutions, got %d", len(sols))
	}
	for i, sol := range sols {
		if sol.Empty() != 0 {
			t.Errorf("solution %d incomplete", i)
		}
		if len(FindConflicts(sol)) != 0 {
			t.Errorf("solution %d has conflicts", i)
		}
		if sol.Value(1, 2) != 4 {
			t.Errorf("solution %d dropped the given", i)
		}
		for j := 0; j < i; j++ {
			if sol.Equal(sols[j]) {
				t.Errorf("solutions %d and %d are duplicates", j, i)
			}
		}
	}
}

func TestSolveAllMaxDefaults(t *testing.T) {
	b, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	sols, err := SolveAll(context.Background(), b, 0)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(sols) != 1 {
		t.Errorf("max<=0 should yield a single solution, got %d", len(sols))
	}
}

func TestCountSolutions(t *testing.T) {
	unique, err := Decode(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	n, err := CountSolutions(context.Background(), unique, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Errorf("classic puzzle solutions = %d, want 1", n)
	}

	open, _ := New(2, 2)
	n, err = CountSolutions(context.Background(), open, 4)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 4 {
		t.Errorf("count should stop at the limit, got %d", n)
	}

	conflicted, _ := New(2, 2)
	_ = conflicted.Set(0, 0, 1)
	_ = conflicted.Set(0, 1, 1)
	n, err = CountSolutions(context.Background(), conflicted, 2)
	if err != nil || n != 0 {
		t.Errorf("conflicted board count = %d err = %v, want 0", n, err)
	}
}

func TestSolveTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	b, _ := New(3, 3)
	if _, err := SolveAll(ctx, b, 1); err != context.DeadlineExceeded {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}
