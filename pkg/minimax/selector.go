package minimax

import (
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

// Intn is the random source used to break ties on a side's first move.
type Intn interface {
	Intn(n int) int
}

type Evaluation struct {
	Scores    map[int]int
	BestScore int
	// Tied holds every move reaching BestScore, in increasing index order.
	Tied  []int
	Nodes int
}

// Evaluate scores every empty cell for m. Best is judged from m's side: the
// highest score for O and the lowest for X. The board is left unchanged.
func Evaluate(b *tictactoe.Board, m tictactoe.Mark, pruning bool) Evaluation {
	s := search{board: b}
	ev := Evaluation{
		Scores:    make(map[int]int, tictactoe.Size),
		BestScore: minSentinel,
	}

	sign := 1
	if !m.Maximizing() {
		sign = -1
		ev.BestScore = maxSentinel
	}

	for _, idx := range b.LegalMoves() {
		score := s.explore(idx, m, func() int {
			return s.score(m.Opponent().Maximizing(), pruning)
		})
		ev.Scores[idx] = score

		switch {
		case score*sign > ev.BestScore*sign:
			ev.BestScore = score
			ev.Tied = []int{idx}
		case score == ev.BestScore:
			ev.Tied = append(ev.Tied, idx)
		}
	}

	ev.Nodes = s.nodes
	return ev
}

// Pick applies the tie-break policy: random among the tied moves only on a
// side's first move, otherwise the lowest index. It returns -1 when there is
// nothing to pick.
func (ev Evaluation) Pick(isFirstMove bool, rng Intn) int {
	if len(ev.Tied) == 0 {
		return -1
	}

	if isFirstMove && len(ev.Tied) > 1 && rng != nil {
		return ev.Tied[rng.Intn(len(ev.Tied))]
	}

	return ev.Tied[0]
}

// ChooseMove picks m's move on b, places it and returns its index. b must
// have at least one empty cell.
func ChooseMove(b *tictactoe.Board, m tictactoe.Mark, pruning, isFirstMove bool, rng Intn) int {
	ev := Evaluate(b, m, pruning)
	move := ev.Pick(isFirstMove, rng)
	b.Place(move, m)

	return move
}
