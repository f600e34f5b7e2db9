package match

import (
	"errors"
	"fmt"
	"io"

	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
)

var (
	ErrBadMode      = errors.New("mode must be 1 (Human vs Computer) or 2 (Computer vs Computer)")
	ErrBadAlgorithm = errors.New("algorithm must be x (Minimax) or o (Minimax with Alpha-Beta Pruning)")
)

// Config is read once before a match and does not change during play.
type Config struct {
	HumanX  bool
	Pruning bool
}

// ParseArgs reads the console arguments: mode "1" or "2", algorithm "x" or "o".
func ParseArgs(mode, algorithm string) (Config, error) {
	var c Config

	switch mode {
	case "1":
		c.HumanX = true
	case "2":
	default:
		return c, fmt.Errorf("%w, got %q", ErrBadMode, mode)
	}

	switch algorithm {
	case "o":
		c.Pruning = true
	case "x":
	default:
		return c, fmt.Errorf("%w, got %q", ErrBadAlgorithm, algorithm)
	}

	return c, nil
}

func (c Config) Mode() string {
	if c.HumanX {
		return "Human vs Computer"
	}

	return "Computer vs Computer"
}

func (c Config) Algorithm() string {
	if c.Pruning {
		return "Alpha-Beta Pruning"
	}

	return "Minimax"
}

func (c Config) Describe() string {
	return fmt.Sprintf("You chose %s mode with %s algorithm.", c.Mode(), c.Algorithm())
}

// Players builds the two move sources for c. O is always the computer.
func (c Config) Players(in io.Reader, out io.Writer, opts ...minimax.Option) (x, o Player) {
	newBot := func() *minimax.Client {
		return minimax.New(append([]minimax.Option{minimax.WithPruning(c.Pruning)}, opts...)...)
	}

	if c.HumanX {
		x = NewHuman("Player 1", in, out)
	} else {
		x = NewComputer(newBot(), out)
	}

	return x, NewComputer(newBot(), out)
}
