package tictactoe

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell already taken")
	ErrGameOver   = errors.New("game is over")
)

// Size is the number of cells on the board.
const Size = 9

type Mark int8

const (
	Empty Mark = 0
	X     Mark = 1
	O     Mark = -1
)

func (m Mark) String() string {
	s := " "
	if m == X {
		s = "X"
	}

	if m == O {
		s = "O"
	}

	return s
}

func (m Mark) Opponent() Mark {
	return -m
}

// Maximizing reports whether m is the side whose scores the search maximizes.
func (m Mark) Maximizing() bool {
	return m == O
}

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Tie:
		return "tie"
	}

	return "in progress"
}

// Winner returns the mark that won, or Empty for a tie or unfinished game.
func (o Outcome) Winner() Mark {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	}

	return Empty
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Lines returns the eight winning triples.
func Lines() [8][3]int {
	return lines
}

// Board is value-like: copying it copies the whole position.
type Board struct {
	Cells    [Size]Mark
	LastMove int
}

func New() *Board {
	return &Board{LastMove: -1}
}

// Parse reads a board from nine cells written as X, O or '.' for empty.
// Whitespace, '|' and '/' row separators are ignored.
func Parse(s string) (*Board, error) {
	b := New()
	i := 0
	for _, r := range s {
		var m Mark
		switch r {
		case 'X', 'x':
			m = X
		case 'O', 'o':
			m = O
		case '.', '_', '-':
			m = Empty
		case '|', '/', ' ', '\n', '\t':
			continue
		default:
			return nil, fmt.Errorf("parse board: unexpected %q", r)
		}

		if i >= Size {
			return nil, fmt.Errorf("parse board: more than %d cells", Size)
		}

		b.Cells[i] = m
		i++
	}

	if i != Size {
		return nil, fmt.Errorf("parse board: got %d cells, want %d", i, Size)
	}

	return b, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) *Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Place puts m on an empty cell. It is the search's half of a place/clear
// pair and panics on misuse instead of silently corrupting the position.
func (b *Board) Place(idx int, m Mark) {
	if idx < 0 || idx >= Size {
		panic(fmt.Sprintf("Place out of range: %d", idx))
	}

	if m == Empty {
		panic("Place with empty mark")
	}

	if b.Cells[idx] != Empty {
		panic(fmt.Sprintf("Place on occupied cell %d", idx))
	}

	b.Cells[idx] = m
}

func (b *Board) Clear(idx int) {
	if idx < 0 || idx >= Size {
		panic(fmt.Sprintf("Clear out of range: %d", idx))
	}

	if b.Cells[idx] == Empty {
		panic("Clear on empty cell")
	}

	b.Cells[idx] = Empty
}

// Play validates and applies a move made during a match.
func (b *Board) Play(idx int, m Mark) error {
	if idx < 0 || idx >= Size {
		return fmt.Errorf("%w: %d", ErrOutOfRange, idx)
	}

	if b.Outcome() != InProgress {
		return ErrGameOver
	}

	if b.Cells[idx] != Empty {
		return fmt.Errorf("%w: %d", ErrOccupied, idx)
	}

	b.Cells[idx] = m
	b.LastMove = idx

	return nil
}

func (b *Board) IsWin(m Mark) bool {
	for _, l := range lines {
		if b.Cells[l[0]] == m && b.Cells[l[1]] == m && b.Cells[l[2]] == m {
			return true
		}
	}

	return false
}

func (b *Board) IsFull() bool {
	return !b.AnyLegalMoves()
}

func (b *Board) AnyLegalMoves() bool {
	return slices.Contains(b.Cells[:], Empty)
}

// LegalMoves returns the empty cells in increasing index order.
func (b *Board) LegalMoves() []int {
	emptyCells := make([]int, 0, Size)
	for m, p := range b.Cells {
		if p != Empty {
			continue
		}
		emptyCells = append(emptyCells, m)
	}

	return emptyCells
}

// Count returns the number of marks on the board.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.Cells {
		if p != Empty {
			n++
		}
	}

	return n
}

// Outcome classifies the position. An O win is checked first, matching the
// order the search uses for terminal states.
func (b *Board) Outcome() Outcome {
	switch {
	case b.IsWin(O):
		return OWins
	case b.IsWin(X):
		return XWins
	case b.IsFull():
		return Tie
	}

	return InProgress
}

func (b *Board) Winner() Mark {
	return b.Outcome().Winner()
}

// WinningLine returns the first triple held entirely by m, or nil.
func (b *Board) WinningLine(m Mark) []int {
	for _, l := range lines {
		if b.Cells[l[0]] == m && b.Cells[l[1]] == m && b.Cells[l[2]] == m {
			return []int{l[0], l[1], l[2]}
		}
	}

	return nil
}

// String renders the board the way the console game prints it.
func (b *Board) String() string {
	var s strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			s.WriteString("---|---|---\n")
		}
		fmt.Fprintf(&s, " %s | %s | %s \n", b.Cells[row*3], b.Cells[row*3+1], b.Cells[row*3+2])
	}

	return s.String()
}

// Key is a compact form used in logs and test names, e.g. "X...X...O".
func (b *Board) Key() string {
	k := make([]byte, Size)
	for i, p := range b.Cells {
		switch p {
		case X:
			k[i] = 'X'
		case O:
			k[i] = 'O'
		default:
			k[i] = '.'
		}
	}

	return string(k)
}
