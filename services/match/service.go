package match

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

// Player is a move source. It proposes a move on a copy of the board and the
// match applies it.
type Player interface {
	Name() string
	NextMove(ctx context.Context, board tictactoe.Board, m tictactoe.Mark, first bool) (int, error)
}

type Result struct {
	ID      string
	Outcome tictactoe.Outcome
	Winner  string
	Moves   []int
	Board   tictactoe.Board
	Elapsed time.Duration
}

type Service struct {
	out io.Writer
}

func New(out io.Writer) *Service {
	return &Service{
		out: out,
	}
}

// Play runs one match, X moving first, until a win or a full board.
func (s *Service) Play(ctx context.Context, x, o Player) (Result, error) {
	id := uuid.NewString()
	log := logger.FromContext(ctx).With("match", id)
	log.Info("match started", "x", x.Name(), "o", o.Name())

	board := tictactoe.New()
	result := Result{ID: id}
	start := time.Now()

	player := tictactoe.X
	for turn := 0; ; turn++ {
		s.display(board)

		p := o
		if player == tictactoe.X {
			p = x
		}

		// Only the opening turn of the match may randomize a tie.
		move, err := p.NextMove(ctx, *board, player, turn == 0)
		if err != nil {
			return result, fmt.Errorf("%s (%s) turn %d: %w", p.Name(), player, turn+1, err)
		}

		if err := board.Play(move, player); err != nil {
			return result, fmt.Errorf("%s (%s) turn %d: %w", p.Name(), player, turn+1, err)
		}

		result.Moves = append(result.Moves, move)
		log.Debug("move", "player", p.Name(), "mark", player.String(), "position", move+1)

		outcome := board.Outcome()
		if outcome == tictactoe.InProgress {
			player = player.Opponent()
			continue
		}

		s.display(board)

		result.Outcome = outcome
		result.Board = *board
		result.Elapsed = time.Since(start)

		if outcome == tictactoe.Tie {
			fmt.Fprintln(s.out, "It's a tie!")
		} else {
			result.Winner = p.Name()
			fmt.Fprintf(s.out, "%s (%s) wins!\n", p.Name(), player)
		}

		fmt.Fprintf(s.out, "Game over! Total time: %.2f seconds.\n", result.Elapsed.Seconds())
		log.Info("match finished", "outcome", outcome.String(), "moves", len(result.Moves), "elapsed", result.Elapsed)

		return result, nil
	}
}

func (s *Service) display(b *tictactoe.Board) {
	fmt.Fprintf(s.out, "\n\n%s\n\n", b)
}
