package game

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
	"github.com/chushaa/MinMaxAlgorithm/services/game/game"
	"github.com/chushaa/MinMaxAlgorithm/services/game/settings"
	"github.com/chushaa/MinMaxAlgorithm/services/match"
)

type Service struct {
	options  []minimax.Option
	minThink time.Duration
}

// New configures the bots built for every game. minThink keeps computer
// moves on screen long enough to follow.
func New(minThink time.Duration, options ...minimax.Option) *Service {
	return &Service{
		options:  options,
		minThink: minThink,
	}
}

// Play shows the settings menu unless cfg is given, then plays games until
// the user stops asking for a replay.
func (s *Service) Play(ctx context.Context, cfg *match.Config) error {
	log := logger.FromContext(ctx)

	if cfg == nil {
		settingsModel := settings.InitialModel(header())
		p := tea.NewProgram(settingsModel, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("settings: %w", err)
		}

		chosen, ok := settingsModel.GetSettings()
		if !ok {
			return nil
		}
		cfg = &chosen
	}

	log.Info("settings chosen", "mode", cfg.Mode(), "algorithm", cfg.Algorithm())

	for {
		gameModel := game.InitialModel(ctx, header(), tictactoe.New(), s.bots(*cfg), cfg.Algorithm(), s.minThink)

		p := tea.NewProgram(gameModel, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("game: %w", err)
		}

		if !gameModel.Replay {
			return nil
		}
	}
}

func (s *Service) bots(cfg match.Config) game.Bots {
	newBot := func() *minimax.Client {
		return minimax.New(append([]minimax.Option{minimax.WithPruning(cfg.Pruning)}, s.options...)...)
	}

	bots := game.Bots{tictactoe.O: newBot()}
	if !cfg.HumanX {
		bots[tictactoe.X] = newBot()
	}

	return bots
}

var (
	headerStyle1 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#4204b5ff"}).Render
	headerStyle2 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#19b504ff", Dark: "#19b504ff"}).Render
	headerStyle3 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b55404ff", Dark: "#b55404ff"}).Render
)

func header() string {
	return fmt.Sprintf(
		"%s %s %s %s %s\n\n",
		headerStyle2("---"),
		headerStyle1("Tic"),
		headerStyle2("Tac"),
		headerStyle3("Toe"),
		headerStyle2("---"),
	)
}
