package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/errors"
	"github.com/oyasumi/sudoku/pkg/session"
)

// savesCommand creates the saves command group for archived games.
func (c *CLI) savesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage archived games",
		Long: `List archived games and restore or delete them.

Without a subcommand the archive is listed. Games are addressed by
their ID; any unambiguous prefix works.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listSaves(cmd.Context())
		},
	}

	cmd.AddCommand(c.savesListCommand())
	cmd.AddCommand(c.savesRestoreCommand())
	cmd.AddCommand(c.savesDeleteCommand())
	cmd.AddCommand(c.savesPruneCommand())
	cmd.AddCommand(c.savesPathCommand())

	return cmd
}

// savesListCommand creates the explicit saves list subcommand.
func (c *CLI) savesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listSaves(cmd.Context())
		},
	}
}

// listSaves prints the archived games as a table.
func (c *CLI) listSaves(ctx context.Context) error {
	store, closeStore, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	games, err := archivedGames(ctx, store)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		printInfo("No archived games")
		printNextStep("Archive the current game", appName+" save")
		return nil
	}

	rows := make([][]string, len(games))
	for i, g := range games {
		board, _, err := g.Boards()
		filled := "?"
		size := "?"
		if err == nil {
			filled = fmt.Sprintf("%d/%d", board.Filled(), board.Size()*board.Size())
			size = fmt.Sprintf("%dx%d", board.Size(), board.Size())
		}
		rows[i] = []string{shortID(g.ID), size, filled, relativeTime(g.UpdatedAt)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Size", "Filled", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(StyleTitle.Render("Archived Games"))
	fmt.Println(t.Render())
	printNextStep("Restore a game", appName+" saves restore <id>")
	return nil
}

// savesRestoreCommand creates the saves restore subcommand.
func (c *CLI) savesRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Make an archived game the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			game, err := findSave(ctx, store, args[0])
			if err != nil {
				return err
			}

			restored := *game
			if err := store.SaveCurrent(ctx, &restored); err != nil {
				return fmt.Errorf("restore game: %w", err)
			}

			board, given, err := restored.Boards()
			if err != nil {
				return err
			}
			if err := c.printGrid(ctx, board, given, gridOptions{}); err != nil {
				return err
			}
			printSuccess("Game %s restored", shortID(game.ID))
			return nil
		},
	}
}

// savesDeleteCommand creates the saves delete subcommand.
func (c *CLI) savesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an archived game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			game, err := findSave(ctx, store, args[0])
			if err != nil {
				return err
			}
			if err := store.Store().Delete(ctx, game.ID); err != nil {
				return err
			}
			printSuccess("Game %s deleted", shortID(game.ID))
			return nil
		},
	}
}

// savesPruneCommand creates the saves prune subcommand.
func (c *CLI) savesPruneCommand() *cobra.Command {
	var age time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete games untouched for longer than --age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			removed, err := store.Store().Cleanup(ctx, age)
			if err != nil {
				return err
			}
			if removed == 0 {
				printInfo("Nothing to prune")
				return nil
			}
			printSuccess("Pruned %d game(s)", removed)
			return nil
		},
	}

	cmd.Flags().DurationVar(&age, "age", 30*24*time.Hour, "delete games untouched for this long")

	return cmd
}

// savesPathCommand creates the saves path subcommand.
func (c *CLI) savesPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where games are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if fs, ok := store.Store().(*session.FileStore); ok {
				fmt.Println(fs.Path())
				return nil
			}
			printInfo("Games are stored in Redis at %s", c.Config.RedisAddr)
			return nil
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

// archivedGames lists every stored game except the current slot.
func archivedGames(ctx context.Context, store *session.CLIStore) ([]*session.Game, error) {
	games, err := store.Store().List(ctx)
	if err != nil {
		return nil, err
	}
	out := games[:0]
	for _, g := range games {
		if g.ID == "current" {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// findSave resolves an archived game by ID or unambiguous ID prefix.
func findSave(ctx context.Context, store *session.CLIStore, id string) (*session.Game, error) {
	games, err := archivedGames(ctx, store)
	if err != nil {
		return nil, err
	}

	var matches []*session.Game
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.New(errors.ErrCodeSaveNotFound,
			"no archived game matches %q (run %q to list them)", id, appName+" saves")
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%q matches %d archived games, use a longer prefix", id, len(matches))
	}
}

// relativeTime formats a timestamp relative to now for table display.
func relativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
