package game

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runBot executes the pending bot search synchronously and feeds the result
// back into the model.
func runBot(t *testing.T, m *model) {
	t.Helper()
	require.True(t, m.botTurn(), "Expected the computer to be on move")

	msg := m.botMove()()
	done, ok := msg.(botDoneMsg)
	require.True(t, ok, "Bot command should report its move")
	m.Update(done)
}

func TestHumanVsComputer(t *testing.T) {
	ctx := context.Background()
	bots := Bots{tictactoe.O: minimax.New(minimax.WithPruning(true))}

	t.Run("digit keys play and the computer answers", func(t *testing.T) {
		m := InitialModel(ctx, "", tictactoe.New(), bots, "Minimax", 0)
		require.Nil(t, m.Init(), "Human moves first")

		_, cmd := m.Update(runes("1"))
		require.NotNil(t, cmd, "Computer should start thinking")
		require.Equal(t, tictactoe.X, m.board.Cells[0])
		require.Equal(t, tictactoe.O, m.currentPlayer)

		runBot(t, m)
		require.Equal(t, tictactoe.O, m.board.Cells[4], "Center is the only answer to a corner")
		require.Equal(t, tictactoe.X, m.currentPlayer)
		require.NotNil(t, m.lastStats)
		require.Contains(t, m.View(), "chose position")
	})

	t.Run("occupied cells are ignored", func(t *testing.T) {
		m := InitialModel(ctx, "", tictactoe.New(), bots, "Minimax", 0)
		m.Update(runes("5"))
		runBot(t, m)

		before := *m.board
		_, cmd := m.Update(runes("5"))
		require.Nil(t, cmd)
		require.Equal(t, before, *m.board)
		require.Equal(t, tictactoe.X, m.currentPlayer)
	})

	t.Run("keys are ignored on the computer's turn", func(t *testing.T) {
		m := InitialModel(ctx, "", tictactoe.New(), bots, "Minimax", 0)
		m.Update(runes("1"))

		_, cmd := m.Update(runes("2"))
		require.Nil(t, cmd)
		require.Equal(t, 1, m.board.Count())
	})

	t.Run("computer wins when the human blunders", func(t *testing.T) {
		m := InitialModel(ctx, "", tictactoe.New(), bots, "Minimax", 0)
		for _, k := range []string{"1", "2", "4", "9", "8"} {
			if m.gameOver {
				break
			}
			m.Update(runes(k))
			if m.botTurn() {
				runBot(t, m)
			}
		}

		require.True(t, m.gameOver)
		require.Equal(t, tictactoe.OWins, m.outcome)
		require.Contains(t, m.View(), "Computer")
		require.Contains(t, m.View(), "wins!")
	})

	t.Run("enter after game over asks for a replay", func(t *testing.T) {
		m := InitialModel(ctx, "", tictactoe.MustParse("XX."+"OO."+"..."), bots, "Minimax", 0)
		m.Update(runes("3"))
		require.True(t, m.gameOver)
		require.Equal(t, tictactoe.XWins, m.outcome)
		require.Contains(t, m.View(), "Player 1")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		require.True(t, m.Replay)
	})
}

func TestComputerVsComputer(t *testing.T) {
	m := InitialModel(context.Background(), "", tictactoe.New(), Bots{
		tictactoe.X: minimax.New(minimax.WithSeed(3)),
		tictactoe.O: minimax.New(minimax.WithSeed(4)),
	}, "Minimax", 0)
	require.NotNil(t, m.Init(), "X computer should start immediately")

	for !m.gameOver {
		runBot(t, m)
	}

	require.NoError(t, m.err)
	require.Equal(t, tictactoe.Tie, m.outcome)
	require.Contains(t, m.View(), "It's a tie!")
}

func TestCursor(t *testing.T) {
	m := InitialModel(context.Background(), "", tictactoe.MustParse("."+"X."+"..."+"..."), Bots{}, "", 0)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2, m.cursor, "Right skips occupied cells")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 5, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 4, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 4, m.cursor, "Up stays put when every cell above is taken")
}
