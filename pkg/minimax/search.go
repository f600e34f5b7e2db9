package minimax

import "github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"

// Scores are from O's point of view: O is the maximizer.
const (
	Win  = 1
	Tie  = 0
	Loss = -1

	// Sentinels strictly outside the score range.
	minSentinel = -2
	maxSentinel = 2
)

// Minimax returns the game value of b with perfect play, maximizing says
// whether O is the side to choose a move at this node.
func Minimax(b *tictactoe.Board, maximizing bool) int {
	s := search{board: b}
	return s.minimax(maximizing)
}

// AlphaBeta is Minimax with alpha-beta pruning. It returns the same value as
// Minimax for every position; start it with the full window.
func AlphaBeta(b *tictactoe.Board, alpha, beta int, maximizing bool) int {
	s := search{board: b}
	return s.alphaBeta(alpha, beta, maximizing)
}

// Score runs either variant over the full window.
func Score(b *tictactoe.Board, maximizing, pruning bool) int {
	s := search{board: b}
	return s.score(maximizing, pruning)
}

// search owns the board for the duration of one call tree.
type search struct {
	board *tictactoe.Board
	nodes int
}

func (s *search) score(maximizing, pruning bool) int {
	if pruning {
		return s.alphaBeta(minSentinel, maxSentinel, maximizing)
	}

	return s.minimax(maximizing)
}

func (s *search) terminal() (int, bool) {
	switch {
	case s.board.IsWin(tictactoe.O):
		return Win, true
	case s.board.IsWin(tictactoe.X):
		return Loss, true
	case s.board.IsFull():
		return Tie, true
	}

	return 0, false
}

// explore places m on idx, runs fn and clears idx again on every return path.
func (s *search) explore(idx int, m tictactoe.Mark, fn func() int) int {
	s.board.Place(idx, m)
	defer s.board.Clear(idx)

	return fn()
}

func mover(maximizing bool) tictactoe.Mark {
	if maximizing {
		return tictactoe.O
	}

	return tictactoe.X
}

func (s *search) minimax(maximizing bool) int {
	s.nodes++
	if score, ok := s.terminal(); ok {
		return score
	}

	m := mover(maximizing)
	best := maxSentinel
	if maximizing {
		best = minSentinel
	}

	for idx, c := range s.board.Cells {
		if c != tictactoe.Empty {
			continue
		}

		score := s.explore(idx, m, func() int {
			return s.minimax(!maximizing)
		})

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func (s *search) alphaBeta(alpha, beta int, maximizing bool) int {
	s.nodes++
	if score, ok := s.terminal(); ok {
		return score
	}

	m := mover(maximizing)
	best := maxSentinel
	if maximizing {
		best = minSentinel
	}

	for idx, c := range s.board.Cells {
		if c != tictactoe.Empty {
			continue
		}

		score := s.explore(idx, m, func() int {
			return s.alphaBeta(alpha, beta, !maximizing)
		})

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}

		if beta <= alpha {
			break
		}
	}

	return best
}
