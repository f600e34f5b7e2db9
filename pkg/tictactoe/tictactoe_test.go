package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsWin(t *testing.T) {
	t.Run("every triple wins for both marks", func(t *testing.T) {
		for _, l := range Lines() {
			for _, m := range []Mark{X, O} {
				b := New()
				for _, idx := range l {
					b.Place(idx, m)
				}

				// Fill one unrelated cell with the opponent where possible.
				for i := range Size {
					if b.Cells[i] == Empty {
						b.Place(i, m.Opponent())
						break
					}
				}

				require.True(t, b.IsWin(m), "%s should win on %v (%s)", m, l, b.Key())
				require.False(t, b.IsWin(m.Opponent()), "%s should not win on %v", m.Opponent(), l)
			}
		}
	})

	t.Run("no triple means no winner", func(t *testing.T) {
		for _, s := range []string{
			".........",
			"XOX" + "XOO" + "OXX",
			"XX." + "OO." + "...",
			"X.O" + ".O." + "X.X",
		} {
			b := MustParse(s)
			require.False(t, b.IsWin(X), "X should not win on %s", s)
			require.False(t, b.IsWin(O), "O should not win on %s", s)
		}
	})
}

func TestIsFull(t *testing.T) {
	require.False(t, New().IsFull(), "Empty board is not full")
	require.False(t, MustParse("XOX"+"XOO"+"OX.").IsFull(), "Board with one empty cell is not full")
	require.True(t, MustParse("XOX"+"XOO"+"OXX").IsFull(), "Board without empty cells is full")

	b := New()
	for i := range Size {
		require.False(t, b.IsFull())
		b.Place(i, []Mark{X, O}[i%2])
	}
	require.True(t, b.IsFull())
}

func TestPlaceClear(t *testing.T) {
	t.Run("clear restores the position", func(t *testing.T) {
		b := MustParse("X.." + ".O." + "...")
		before := *b

		b.Place(8, X)
		require.Equal(t, X, b.Cells[8])
		b.Clear(8)

		require.Equal(t, before, *b, "Place then Clear should leave the board unchanged")
	})

	t.Run("misuse panics", func(t *testing.T) {
		b := MustParse("X........")

		require.Panics(t, func() { b.Place(0, O) }, "Should panic when placing on an occupied cell")
		require.Panics(t, func() { b.Place(9, O) }, "Should panic when out of range")
		require.Panics(t, func() { b.Place(1, Empty) }, "Should panic when placing an empty mark")
		require.Panics(t, func() { b.Clear(1) }, "Should panic when clearing an empty cell")
	})
}

func TestPlay(t *testing.T) {
	t.Run("valid move records last move", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Play(4, X))
		require.Equal(t, 4, b.LastMove)
		require.Equal(t, 1, b.Count())
	})

	t.Run("rejects bad moves", func(t *testing.T) {
		b := MustParse("X........")

		require.ErrorIs(t, b.Play(0, O), ErrOccupied)
		require.ErrorIs(t, b.Play(-1, O), ErrOutOfRange)
		require.ErrorIs(t, b.Play(9, O), ErrOutOfRange)
		require.Equal(t, 1, b.Count(), "Rejected moves should not change the board")
	})

	t.Run("rejects moves after a win", func(t *testing.T) {
		b := MustParse("XXX" + "OO." + "...")
		require.ErrorIs(t, b.Play(5, O), ErrGameOver)
	})
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		board string
		want  Outcome
		line  []int
	}{
		{".........", InProgress, nil},
		{"XXX" + "OO." + "...", XWins, []int{0, 1, 2}},
		{"X.O" + "XO." + "O.X", OWins, []int{2, 4, 6}},
		{"XOX" + "XOO" + "OXX", Tie, nil},
	}

	for _, c := range cases {
		t.Run(c.board, func(t *testing.T) {
			b := MustParse(c.board)
			require.Equal(t, c.want, b.Outcome())
			require.Equal(t, c.want.Winner(), b.Winner())
			if c.line != nil {
				require.Equal(t, c.line, b.WinningLine(b.Winner()))
			}
		})
	}
}

func TestParse(t *testing.T) {
	b, err := Parse("X | . | . / . | X | . / . | . | O")
	require.NoError(t, err)
	require.Equal(t, "X...X...O", b.Key())
	require.Equal(t, -1, b.LastMove)

	_, err = Parse("XX")
	require.Error(t, err, "Should reject short boards")

	_, err = Parse("..........")
	require.Error(t, err, "Should reject long boards")

	_, err = Parse("Z........")
	require.Error(t, err, "Should reject unknown marks")
}

func TestLegalMoves(t *testing.T) {
	b := MustParse("X.O" + ".X." + "..O")
	require.Equal(t, []int{1, 3, 5, 6, 7}, b.LegalMoves())
	require.True(t, b.AnyLegalMoves())
}

func TestString(t *testing.T) {
	b := MustParse("X.." + ".O." + "..X")
	want := " X |   |   \n" +
		"---|---|---\n" +
		"   | O |   \n" +
		"---|---|---\n" +
		"   |   | X \n"
	require.Equal(t, want, b.String())
}

func TestMark(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
	require.True(t, O.Maximizing())
	require.False(t, X.Maximizing())
	require.Equal(t, " ", Empty.String())
}
