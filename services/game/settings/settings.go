package settings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chushaa/MinMaxAlgorithm/services/match"
)

var (
	listSelectorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).Render
)

type choiceLevel int

const (
	choiceLevelMode choiceLevel = iota
	choiceLevelAlgorithm
)

var choices = map[choiceLevel][]string{
	choiceLevelMode:      {"Human vs Computer", "Computer vs Computer"},
	choiceLevelAlgorithm: {"Minimax", "Minimax with Alpha-Beta Pruning"},
}

var titles = map[choiceLevel]string{
	choiceLevelMode:      "Choose mode:",
	choiceLevelAlgorithm: "Choose algorithm:",
}

type model struct {
	cursor      int
	choiceLevel choiceLevel
	header      string

	config match.Config
	done   bool

	clear bool
}

// GetSettings returns the chosen configuration and whether the user finished
// the menu instead of quitting.
func (m *model) GetSettings() (match.Config, bool) {
	return m.config, m.done
}

func InitialModel(header string) *model {
	return &model{
		header: header,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	options := choices[m.choiceLevel]

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.clear = true
			return m, tea.Quit

		case "enter":
			switch m.choiceLevel {
			case choiceLevelMode:
				m.config.HumanX = m.cursor == 0
			case choiceLevelAlgorithm:
				m.config.Pruning = m.cursor == 1
			}

			m.choiceLevel++
			if m.choiceLevel > choiceLevelAlgorithm {
				m.done = true
				m.clear = true
				return m, tea.Quit
			}

			m.cursor = 0
			return m, nil

		case "down", "j":
			m.cursor++
			if m.cursor >= len(options) {
				m.cursor = 0
			}

		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(options) - 1
			}
		}
	}

	return m, nil
}

func (m *model) View() string {
	if m.clear {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(m.header)
	s.WriteString(titles[m.choiceLevel])
	s.WriteString("\n")

	for i, v := range choices[m.choiceLevel] {
		if m.cursor == i {
			s.WriteString(listSelectorStyle("(•) "))
		} else {
			s.WriteString(listSelectorStyle("( ) "))
		}

		s.WriteString(v)
		s.WriteString("\n")
	}

	return s.String()
}
