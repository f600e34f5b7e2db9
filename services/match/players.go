package match

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

// Human reads 1-based positions from a console until a legal one is given.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name: name,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) NextMove(ctx context.Context, board tictactoe.Board, m tictactoe.Mark, _ bool) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintf(h.out, "Player %s, enter your move (1-9): ", m)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return -1, err
			}

			return -1, io.ErrUnexpectedEOF
		}

		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil || n < 1 || n > tictactoe.Size {
			fmt.Fprintln(h.out, "Invalid move. Enter a number between 1 and 9.")
			continue
		}

		if board.Cells[n-1] != tictactoe.Empty {
			fmt.Fprintln(h.out, "This spot is already taken. Try again.")
			continue
		}

		return n - 1, nil
	}
}

type Computer struct {
	bot   *minimax.Client
	out   io.Writer
	nodes int
}

func NewComputer(bot *minimax.Client, out io.Writer) *Computer {
	return &Computer{
		bot: bot,
		out: out,
	}
}

func (c *Computer) Name() string {
	return "Computer"
}

func (c *Computer) NextMove(ctx context.Context, board tictactoe.Board, m tictactoe.Mark, first bool) (int, error) {
	move, err := c.bot.GetNextMove(ctx, &board, m, first)
	if err != nil {
		return -1, err
	}

	stats := c.bot.Stats()
	c.nodes += stats.Nodes

	logger.FromContext(ctx).Debug("search done",
		"mark", m.String(),
		"position", move+1,
		"score", stats.BestScore,
		"tied", len(stats.Tied),
		"randomized", stats.Randomized,
		"nodes", stats.Nodes,
		"pruning", stats.Pruning,
		"think", stats.ThinkTime,
	)

	fmt.Fprintf(c.out, "Computer (%s) chose position %d\n", m, move+1)

	return move, nil
}

// Nodes is the number of positions searched over every move so far.
func (c *Computer) Nodes() int {
	return c.nodes
}
