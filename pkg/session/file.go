package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileStore is a file-based game store. Each game is one JSON file in a
// config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store. If baseDir is empty it
// defaults to ~/.config/sudoku/games.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "sudoku", "games")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create game dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) gamePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.gamePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read game file: %w", err)
	}

	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse game: %w", err)
	}
	return &g, nil
}

func (s *FileStore) Set(ctx context.Context, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	if err := os.WriteFile(s.gamePath(game.ID), data, 0600); err != nil {
		return fmt.Errorf("write game file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.gamePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove game file: %w", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read game dir: %w", err)
	}

	var games []*Game
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var g Game
		if err := json.Unmarshal(data, &g); err != nil {
			continue
		}
		games = append(games, &g)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].UpdatedAt.After(games[j].UpdatedAt)
	})
	return games, nil
}

func (s *FileStore) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	games, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-maxAge)

	removed := 0
	for _, g := range games {
		if g.UpdatedAt.After(cutoff) {
			continue
		}
		if err := s.Delete(ctx, g.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Path returns the base directory for game files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)

// =============================================================================
// CLI convenience wrapper
// =============================================================================

// currentSlot is the fixed ID the CLI commands read and write.
const currentSlot = "current"

// CLIStore wraps a Store with the single "current game" slot semantics
// the one-shot commands need.
type CLIStore struct {
	store Store
}

// NewCLIStore creates the default file-backed CLI store.
func NewCLIStore() (*CLIStore, error) {
	store, err := NewFileStore("")
	if err != nil {
		return nil, err
	}
	return &CLIStore{store: store}, nil
}

// NewCLIStoreWith wraps an existing backend.
func NewCLIStoreWith(store Store) *CLIStore {
	return &CLIStore{store: store}
}

// Current retrieves the current game, nil when no game is in progress.
func (c *CLIStore) Current(ctx context.Context) (*Game, error) {
	return c.store.Get(ctx, currentSlot)
}

// SaveCurrent stores game as the current game.
func (c *CLIStore) SaveCurrent(ctx context.Context, game *Game) error {
	game.ID = currentSlot
	return c.store.Set(ctx, game)
}

// ClearCurrent removes the current game.
func (c *CLIStore) ClearCurrent(ctx context.Context) error {
	return c.store.Delete(ctx, currentSlot)
}

// Store exposes the underlying backend for listing and deletion.
func (c *CLIStore) Store() Store {
	return c.store
}
