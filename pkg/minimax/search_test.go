package minimax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

// positions returns every board reachable from the empty board in at most
// plies moves, X moving first.
func positions(plies int) []tictactoe.Board {
	var out []tictactoe.Board
	var walk func(b *tictactoe.Board, m tictactoe.Mark, left int)
	walk = func(b *tictactoe.Board, m tictactoe.Mark, left int) {
		out = append(out, *b)
		if left == 0 || b.Outcome() != tictactoe.InProgress {
			return
		}

		for _, idx := range b.LegalMoves() {
			b.Place(idx, m)
			walk(b, m.Opponent(), left-1)
			b.Clear(idx)
		}
	}
	walk(tictactoe.New(), tictactoe.X, plies)

	return out
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := positions(3)
	require.Len(t, boards, 1+9+9*8+9*8*7, "Should visit every position up to 3 plies")

	for _, b := range boards {
		for _, maximizing := range []bool{true, false} {
			plainBoard, prunedBoard := b, b

			plain := Minimax(&plainBoard, maximizing)
			pruned := AlphaBeta(&prunedBoard, minSentinel, maxSentinel, maximizing)

			require.Equal(t, plain, pruned,
				"Variants should agree on %s (maximizing=%v)", b.Key(), maximizing)
			require.Equal(t, b, plainBoard, "Minimax should restore the board")
			require.Equal(t, b, prunedBoard, "AlphaBeta should restore the board")
		}
	}
}

func TestTerminalScores(t *testing.T) {
	cases := []struct {
		board string
		want  int
	}{
		{"OOO" + "XX." + "X..", Win},
		{"XXX" + "OO." + "O..", Loss},
		{"XOX" + "XOO" + "OXX", Tie},
	}

	for _, c := range cases {
		t.Run(c.board, func(t *testing.T) {
			for _, maximizing := range []bool{true, false} {
				require.Equal(t, c.want, Minimax(tictactoe.MustParse(c.board), maximizing))
				require.Equal(t, c.want, Score(tictactoe.MustParse(c.board), maximizing, true))
			}
		})
	}
}

func TestEmptyBoardIsATie(t *testing.T) {
	for _, pruning := range []bool{false, true} {
		require.Equal(t, Tie, Score(tictactoe.New(), false, pruning), "X to move on an empty board")
		require.Equal(t, Tie, Score(tictactoe.New(), true, pruning), "O to move on an empty board")
	}
}

func TestForcedLines(t *testing.T) {
	t.Run("O to move can complete a row", func(t *testing.T) {
		b := tictactoe.MustParse("OO." + "XX." + "X..")
		require.Equal(t, Win, Minimax(b, true))
	})

	t.Run("X to move can complete a row", func(t *testing.T) {
		b := tictactoe.MustParse("XX." + "OO." + "...")
		require.Equal(t, Loss, Minimax(b, false))
	})

	t.Run("a fork is lost for the side to move", func(t *testing.T) {
		// X threatens 1 and 8, O can only block one.
		b := tictactoe.MustParse("X.X" + "OX." + "O..")
		require.False(t, b.IsWin(tictactoe.X))
		require.Equal(t, Loss, Minimax(b, true))
		require.Equal(t, Loss, Score(b, true, true))
	})
}

func TestPruningVisitsFewerPositions(t *testing.T) {
	plain := search{board: tictactoe.New()}
	plain.minimax(false)

	pruned := search{board: tictactoe.New()}
	pruned.alphaBeta(minSentinel, maxSentinel, false)

	require.Greater(t, plain.nodes, pruned.nodes,
		"Alpha-beta should skip positions that cannot change the result")
	require.Equal(t, 549946, plain.nodes, "Plain minimax visits the whole game tree")
}
