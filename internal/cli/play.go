package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/oyasumi/sudoku/pkg/observability"
	"github.com/oyasumi/sudoku/pkg/render"
	"github.com/oyasumi/sudoku/pkg/sudoku"
)

// playCommand creates the play command for the interactive session.
func (c *CLI) playCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the current game interactively",
		Long: `Play the current game in a full-screen interactive session.

Move the cursor with the arrow keys or hjkl, press a digit to place it,
and 0 or x to clear a cell. The game is saved when you quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			game, board, given, err := c.currentGame(ctx, store)
			if err != nil {
				return err
			}

			model := newPlayModel(ctx, c, board, given)
			prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("interactive session: %w", err)
			}

			m := final.(playModel)
			game.Update(m.board)
			if err := store.SaveCurrent(ctx, game); err != nil {
				return fmt.Errorf("save game: %w", err)
			}
			printSuccess("Game saved")
			if m.board.Empty() == 0 && len(sudoku.FindConflicts(m.board)) == 0 {
				printSuccess("Congratulations, the puzzle is finished!")
				printNextStep("Start another one", appName+" new")
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// PlayModel - Interactive game session
// =============================================================================

// cursorStyle marks the selected cell in the grid.
var cursorStyle = lipgloss.NewStyle().Reverse(true)

// playModel is the bubbletea model for an interactive game. ctx is the
// command context the program runs under, passed through to hooks and
// renders.
type playModel struct {
	ctx   context.Context
	cli   *CLI
	board *sudoku.Board
	given *sudoku.Board

	row, col   int
	candidates bool
	status     string
}

func newPlayModel(ctx context.Context, c *CLI, board, given *sudoku.Board) playModel {
	return playModel{ctx: ctx, cli: c, board: board, given: given}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := m.board.Size()
	m.status = ""

	switch s := key.String(); s {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < n-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < n-1 {
			m.col++
		}
	case "c":
		m.candidates = !m.candidates
	case "0", "x", "backspace", "delete":
		m.place(0)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.place(int(s[0] - '0'))
		}
	}
	return m, nil
}

// place writes value at the cursor, refusing givens and oversized values.
func (m *playModel) place(value int) {
	if m.given.Value(m.row, m.col) != 0 {
		m.status = StyleWarning.Render("cell is a given")
		return
	}
	if value > m.board.Size() {
		m.status = StyleWarning.Render(fmt.Sprintf("values go up to %d", m.board.Size()))
		return
	}
	if err := m.board.Set(m.row, m.col, value); err != nil {
		m.status = StyleWarning.Render(err.Error())
		return
	}
	observability.Game().OnMove(m.ctx, m.row, m.col, value)
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sudoku"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows/hjkl move  1-9 place  x clear  c candidates  q quit"))
	b.WriteString("\n\n")

	grid, err := m.cli.renderGrid(m.ctx, m.board, m.given, gridOptions{
		candidates: m.candidates,
		conflicts:  true,
		overlay:    m.cursorOverlay(),
	})
	if err != nil {
		return "render error: " + err.Error()
	}
	b.WriteString(grid)
	b.WriteString("\n\n")

	total := m.board.Size() * m.board.Size()
	b.WriteString(StyleDim.Render(fmt.Sprintf("(%d,%d)  filled %d/%d",
		m.row+1, m.col+1, m.board.Filled(), total)))
	if m.status != "" {
		b.WriteString("  " + m.status)
	}
	b.WriteString("\n")

	return b.String()
}

// cursorOverlay renders the selected cell in reverse video, keeping its
// value visible (or a placeholder when empty).
func (m playModel) cursorOverlay() *render.OverlayProvider {
	text := "_"
	if v := m.board.Value(m.row, m.col); v != 0 {
		text = fmt.Sprintf("%d", v)
	}
	return render.NewOverlayProvider(map[render.Coord]render.Fragment{
		{Row: m.row, Col: m.col}: render.Styled(text, cursorStyle),
	})
}
