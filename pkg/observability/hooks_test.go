package observability

import (
	"context"
	"testing"
	"time"
)

// recordingHooks counts every event it receives.
type recordingHooks struct {
	NoopGameHooks
	NoopRenderHooks
	moves   int
	renders int
}

func (r *recordingHooks) OnMove(context.Context, int, int, int)    { r.moves++ }
func (r *recordingHooks) OnRenderStart(context.Context, int, bool) { r.renders++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	// Must not panic with nothing registered.
	Game().OnNewGame(context.Background(), 0.5, 30)
	Game().OnMove(context.Background(), 1, 2, 3)
	Game().OnSolveComplete(context.Background(), 1, time.Second, nil)
	Render().OnRenderStart(context.Background(), 9, false)
	Render().OnRenderComplete(context.Background(), 9, time.Millisecond, nil)
}

func TestSetAndReset(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetGameHooks(rec)
	SetRenderHooks(rec)

	Game().OnMove(context.Background(), 0, 0, 5)
	Game().OnMove(context.Background(), 0, 1, 6)
	Render().OnRenderStart(context.Background(), 9, true)

	if rec.moves != 2 {
		t.Errorf("moves = %d, want 2", rec.moves)
	}
	if rec.renders != 1 {
		t.Errorf("renders = %d, want 1", rec.renders)
	}

	Reset()
	Game().OnMove(context.Background(), 0, 0, 5)
	if rec.moves != 2 {
		t.Error("Reset should restore the no-op hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetGameHooks(rec)
	SetGameHooks(nil)

	Game().OnMove(context.Background(), 0, 0, 1)
	if rec.moves != 1 {
		t.Error("nil registration should be ignored")
	}
}
