package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/oyasumi/sudoku/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion
// with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks implements the observability hook interfaces by logging at
// debug level, so events surface under --verbose.
type logHooks struct {
	logger *log.Logger
}

// installHooks registers logging hooks for game and render events.
func installHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetGameHooks(h)
	observability.SetRenderHooks(h)
}

func (h *logHooks) OnNewGame(_ context.Context, difficulty float64, clues int) {
	h.logger.Debug("new game", "difficulty", difficulty, "clues", clues)
}

func (h *logHooks) OnMove(_ context.Context, row, col, value int) {
	h.logger.Debug("move", "row", row+1, "col", col+1, "value", value)
}

func (h *logHooks) OnCheck(_ context.Context, conflicts int) {
	h.logger.Debug("check", "conflicts", conflicts)
}

func (h *logHooks) OnSolveStart(_ context.Context, empty int) {
	h.logger.Debug("solve start", "empty", empty)
}

func (h *logHooks) OnSolveComplete(_ context.Context, solutions int, d time.Duration, err error) {
	h.logger.Debug("solve complete", "solutions", solutions, "elapsed", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, size int, candidates bool) {
	h.logger.Debug("render start", "size", size, "candidates", candidates)
}

func (h *logHooks) OnRenderComplete(_ context.Context, size int, d time.Duration, err error) {
	h.logger.Debug("render complete", "size", size, "elapsed", d, "err", err)
}
