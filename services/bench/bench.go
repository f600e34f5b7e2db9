package bench

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
	"github.com/chushaa/MinMaxAlgorithm/services/match"
)

// Variant is the aggregate of every computer-vs-computer game played with one
// search variant.
type Variant struct {
	Pruning bool
	Games   int
	XWins   int
	OWins   int
	Ties    int
	Nodes   int
	Elapsed time.Duration
}

func (v Variant) Name() string {
	return match.Config{Pruning: v.Pruning}.Algorithm()
}

type Report struct {
	Variants []Variant
}

type Options struct {
	Games int
	Seed  uint64
	// Progress receives the progress bar; nil hides it.
	Progress io.Writer
}

// Run plays opts.Games matches per variant. Each variant replays the same
// seeds so openings match across variants. A negative count plays nothing.
func Run(ctx context.Context, opts Options) (Report, error) {
	log := logger.FromContext(ctx)
	games := max(opts.Games, 0)

	var bar *progressbar.ProgressBar
	if opts.Progress != nil && games > 0 {
		bar = progressbar.NewOptions(2*games,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("playing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var report Report
	for _, pruning := range []bool{false, true} {
		v := Variant{Pruning: pruning}

		for i := range games {
			cfg := match.Config{Pruning: pruning}
			x, o := cfg.Players(strings.NewReader(""), io.Discard, minimax.WithSeed(opts.Seed+uint64(i)))

			result, err := match.New(io.Discard).Play(ctx, x, o)
			if err != nil {
				return report, fmt.Errorf("%s game %d: %w", v.Name(), i+1, err)
			}

			v.Games++
			v.Elapsed += result.Elapsed
			v.Nodes += x.(*match.Computer).Nodes() + o.(*match.Computer).Nodes()
			switch result.Outcome {
			case tictactoe.XWins:
				v.XWins++
			case tictactoe.OWins:
				v.OWins++
			case tictactoe.Tie:
				v.Ties++
			}

			if bar != nil {
				_ = bar.Add(1)
			}
		}

		log.Info("variant done", "algorithm", v.Name(), "games", v.Games, "nodes", v.Nodes, "elapsed", v.Elapsed)
		report.Variants = append(report.Variants, v)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return report, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#8f6afdff"})
	cellStyle  = lipgloss.NewStyle().PaddingRight(2)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#138a0fff", Dark: "#1ddd37ff"})
)

func (r Report) String() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Computer vs Computer"))
	s.WriteString("\n")

	for _, v := range r.Variants {
		perGame := 0
		if v.Games > 0 {
			perGame = v.Nodes / v.Games
		}

		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Width(34).Render(v.Name()),
			cellStyle.Render(fmt.Sprintf("games %s", valueStyle.Render(fmt.Sprint(v.Games)))),
			cellStyle.Render(fmt.Sprintf("X/O/tie %d/%d/%d", v.XWins, v.OWins, v.Ties)),
			cellStyle.Render(fmt.Sprintf("positions/game %s", valueStyle.Render(fmt.Sprint(perGame)))),
			cellStyle.Render(fmt.Sprintf("total %s", valueStyle.Render(fmt.Sprintf("%.2fs", v.Elapsed.Seconds())))),
		))
		s.WriteString("\n")
	}

	return s.String()
}
