package minimax

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

var ErrNoLegalMoves = errors.New("no legal moves")

type LastMoveStats struct {
	ThinkTime  time.Duration
	Nodes      int
	BestMove   int
	BestScore  int
	Tied       []int
	Randomized bool
	Pruning    bool
}

type Option func(c *Client)

func WithPruning(pruning bool) Option {
	return func(c *Client) {
		c.pruning = pruning
	}
}

// WithRand replaces the random source used for opening tie-breaks.
func WithRand(rng Intn) Option {
	return func(c *Client) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Client) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Client is a perfect-play bot. It is not safe for concurrent use.
type Client struct {
	pruning bool
	rng     Intn

	lastMoveStats *LastMoveStats
}

func New(options ...Option) *Client {
	c := &Client{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) Pruning() bool {
	return c.pruning
}

func (c *Client) Stats() *LastMoveStats {
	return c.lastMoveStats
}

// GetNextMove chooses m's move, places it on board and returns its index.
func (c *Client) GetNextMove(ctx context.Context, board *tictactoe.Board, m tictactoe.Mark, isFirstMove bool) (int, error) {
	c.lastMoveStats = nil

	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if !board.AnyLegalMoves() {
		return -1, ErrNoLegalMoves
	}

	t := time.Now()
	ev := Evaluate(board, m, c.pruning)
	move := ev.Pick(isFirstMove, c.rng)
	board.Place(move, m)

	c.lastMoveStats = &LastMoveStats{
		ThinkTime:  time.Since(t),
		Nodes:      ev.Nodes,
		BestMove:   move,
		BestScore:  ev.BestScore,
		Tied:       ev.Tied,
		Randomized: isFirstMove && len(ev.Tied) > 1,
		Pruning:    c.pruning,
	}

	return move, nil
}
