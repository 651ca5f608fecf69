// Package cli implements the sudoku command-line interface.
//
// Commands are one-shot: each loads the current game from the session
// store, acts on it, and persists the result. The interactive play mode
// keeps the game in memory for the duration of one bubbletea program and
// saves on exit.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/internal/config"
	"github.com/oyasumi/sudoku/pkg/buildinfo"
	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/session"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// appName is the application name used for directories and display.
const appName = "sudoku"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration file applied.
func New(w io.Writer, level log.Level) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	c := &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
	// The hooks log at debug level, so installing them before flags are
	// parsed is safe: they stay silent until --verbose raises the logger
	// to debug via SetLogLevel.
	installHooks(c.Logger)
	return c, nil
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sudoku plays block-structured puzzles in the terminal",
		Long:         `Sudoku is a terminal puzzle game: generate boards, place values one command at a time or in an interactive session, check conflicts, and let the solver finish what you started.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.putCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.loadCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.savesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore creates the session store: Redis when configured, local files
// otherwise. The returned closer releases any backend connection.
func (c *CLI) newStore(ctx context.Context) (*session.CLIStore, func(), error) {
	if addr := c.Config.RedisAddr; addr != "" {
		rs, err := session.NewRedisStore(ctx, addr, 0)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using redis game store", "addr", addr)
		return session.NewCLIStoreWith(rs), func() { _ = rs.Close() }, nil
	}
	fs, err := session.NewCLIStore()
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}

// currentGame loads the current game and decodes its boards.
func (c *CLI) currentGame(ctx context.Context, store *session.CLIStore) (*session.Game, *sudoku.Board, *sudoku.Board, error) {
	game, err := store.Current(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if game == nil {
		return nil, nil, nil, errors.New(errors.ErrCodeSaveNotFound,
			"no game in progress (run %q to start one)", appName+" new")
	}
	board, given, err := game.Boards()
	if err != nil {
		return nil, nil, nil, err
	}
	return game, board, given, nil
}
