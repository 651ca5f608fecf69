package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// saveCommand creates the save command for archiving the current game.
func (c *CLI) saveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Archive the current game",
		Long: `Archive a snapshot of the current game under its own ID.

The current game keeps going; the archived copy can be listed and
restored later with 'saves'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			game, _, _, err := c.currentGame(ctx, store)
			if err != nil {
				return err
			}

			archived := *game
			archived.ID = uuid.NewString()
			if err := store.Store().Set(ctx, &archived); err != nil {
				return fmt.Errorf("archive game: %w", err)
			}

			printSuccess("Game archived")
			printDetail("ID: %s", archived.ID)
			printNextStep("List archived games", appName+" saves")
			printNextStep("Restore it later", appName+" saves restore "+shortID(archived.ID))
			return nil
		},
	}

	return cmd
}

// shortID abbreviates a UUID for display; restore accepts prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
