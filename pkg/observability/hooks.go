// Package observability provides hooks for the game and rendering
// lifecycle.
//
// The packages doing the work stay free of logging and metrics concerns;
// consumers register hook implementations at startup and receive events
// about game actions and render calls. No-op defaults mean nothing
// happens unless something is registered.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGameHooks(&myGameHooks{})
//	    // ... run application
//	}
//
// Command code emits events:
//
//	observability.Game().OnMove(ctx, row, col, value)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from game commands.
type GameHooks interface {
	// OnNewGame records a generated game and its clue count.
	OnNewGame(ctx context.Context, difficulty float64, clues int)

	// OnMove records a value placed or cleared at a 0-based coordinate.
	OnMove(ctx context.Context, row, col, value int)

	// OnCheck records a conflict check and how many conflicts it found.
	OnCheck(ctx context.Context, conflicts int)

	// Solve events
	OnSolveStart(ctx context.Context, empty int)
	OnSolveComplete(ctx context.Context, solutions int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events around grid render calls.
type RenderHooks interface {
	// OnRenderStart records the start of a render call.
	OnRenderStart(ctx context.Context, size int, candidates bool)

	// OnRenderComplete records a finished render call.
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnNewGame(context.Context, float64, int)                      {}
func (NoopGameHooks) OnMove(context.Context, int, int, int)                        {}
func (NoopGameHooks) OnCheck(context.Context, int)                                 {}
func (NoopGameHooks) OnSolveStart(context.Context, int)                            {}
func (NoopGameHooks) OnSolveComplete(context.Context, int, time.Duration, error)   {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int, bool)                    {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks   GameHooks   = NoopGameHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetGameHooks registers custom game hooks. Call once at startup.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Call once at startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op defaults. Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
	renderHooks = NoopRenderHooks{}
}
