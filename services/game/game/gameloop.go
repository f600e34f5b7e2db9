package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/pkg/minimax"
	"github.com/chushaa/MinMaxAlgorithm/pkg/tictactoe"
)

type BotPlayer interface {
	GetNextMove(context.Context, *tictactoe.Board, tictactoe.Mark, bool) (int, error)
	Stats() *minimax.LastMoveStats
}

// Bots maps each computer-controlled mark to its bot. Missing marks are
// played from the keyboard.
type Bots map[tictactoe.Mark]BotPlayer

const boardN = 3

type model struct {
	ctx           context.Context
	board         *tictactoe.Board
	cursor        int
	currentPlayer tictactoe.Mark
	bots          Bots
	spinner       spinner.Model
	header        string
	algorithm     string
	minThink      time.Duration

	turn      int
	start     time.Time
	elapsed   time.Duration
	lastStats *minimax.LastMoveStats
	lastBot   tictactoe.Mark

	gameOver bool
	outcome  tictactoe.Outcome
	err      error
	Replay   bool
}

var (
	p1Style              = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	p2Style              = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle          = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	winningRowStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
	lastWinningRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f80000ff", Dark: "#f18787ff"}).Render
	bracketStyle         = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	lastMoveBracketStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000ff", Dark: "#ffffffff"}).Render
	statStyle1           = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
	statStyle2           = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#138a0fff", Dark: "#1ddd37ff"}).Render
	helpStyle            = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
)

var thinkingColors = []func(strs ...string) string{
	bracketStyle,
	lastMoveBracketStyle,
}

func InitialModel(ctx context.Context, header string, b *tictactoe.Board, bots Bots, algorithm string, minThink time.Duration) *model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		ctx:           ctx,
		board:         b,
		currentPlayer: tictactoe.X,
		bots:          bots,
		spinner:       s,
		header:        header,
		algorithm:     algorithm,
		minThink:      minThink,
		start:         time.Now(),
	}
}

func (m *model) Init() tea.Cmd {
	if m.botTurn() {
		return tea.Batch(m.beginTick(), m.botMove())
	}

	return nil
}

func (m *model) botTurn() bool {
	return !m.gameOver && m.bots[m.currentPlayer] != nil
}

func (m *model) name(p tictactoe.Mark) string {
	if m.bots[p] != nil {
		return "Computer"
	}

	return "Player 1"
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case botDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.gameOver = true
			return m, nil
		}

		if err := m.board.Play(msg.move, msg.player); err != nil {
			m.err = err
			m.gameOver = true
			return m, nil
		}

		m.lastStats = msg.stats
		m.lastBot = msg.player
		return m, m.advance()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "right":
			cursor, _ := m.moveRight()
			m.cursor = cursor
		case "left":
			cursor, _ := m.moveLeft()
			m.cursor = cursor
		case "up":
			if m.cursor > boardN-1 {
				oCursor := m.cursor
				m.cursor -= boardN
				for {
					if m.cursor < 0 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.Cells[m.cursor] == tictactoe.Empty {
						break
					}

					m.cursor -= boardN
				}
			}
		case "down":
			if m.cursor >= 0 && m.cursor < boardN*(boardN-1) {
				oCursor := m.cursor
				m.cursor += boardN
				for {
					if m.cursor > len(m.board.Cells)-1 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.Cells[m.cursor] == tictactoe.Empty {
						break
					}

					m.cursor += boardN
				}
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.gameOver {
				return m, nil
			}

			return m, m.humanMove(int(msg.String()[0]-'1'))
		case "enter":
			if m.gameOver {
				m.Replay = true
				return m, tea.Quit
			}

			return m, m.humanMove(m.cursor)
		}

	default:
		if m.gameOver {
			m.cursor = -1
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) humanMove(idx int) tea.Cmd {
	if m.gameOver || m.botTurn() {
		return nil
	}

	if err := m.board.Play(idx, m.currentPlayer); err != nil {
		return nil
	}

	return m.advance()
}

// advance ends the turn that just happened and starts the bot if it is next.
func (m *model) advance() tea.Cmd {
	m.turn++

	if outcome := m.board.Outcome(); outcome != tictactoe.InProgress {
		m.gameOver = true
		m.outcome = outcome
		m.elapsed = time.Since(m.start)
		logger.FromContext(m.ctx).Info("game over", "outcome", outcome.String(), "board", m.board.Key(), "elapsed", m.elapsed)
		return nil
	}

	m.currentPlayer = m.currentPlayer.Opponent()
	m.cursor = m.firstEmpty()

	if m.botTurn() {
		return tea.Batch(m.beginTick(), m.botMove())
	}

	return nil
}

func (m *model) firstEmpty() int {
	if m.cursor >= 0 && m.cursor < len(m.board.Cells) && m.board.Cells[m.cursor] == tictactoe.Empty {
		return m.cursor
	}

	for i, p := range m.board.Cells {
		if p == tictactoe.Empty {
			return i
		}
	}

	return -1
}

type botDoneMsg struct {
	player tictactoe.Mark
	move   int
	stats  *minimax.LastMoveStats
	err    error
}

func (m *model) beginTick() tea.Cmd {
	return func() tea.Msg {
		return m.spinner.Tick()
	}
}

// botMove searches on a copy so the shared board is only touched in Update.
func (m *model) botMove() tea.Cmd {
	bot := m.bots[m.currentPlayer]
	player := m.currentPlayer
	board := *m.board
	first := m.turn == 0
	ctx := m.ctx
	minThink := m.minThink

	return func() tea.Msg {
		t := time.Now()
		move, err := bot.GetNextMove(ctx, &board, player, first)
		if wait := minThink - time.Since(t); wait > 0 {
			time.Sleep(wait)
		}

		logger.FromContext(ctx).Debug("bot move", "mark", player.String(), "position", move+1, "err", err)

		return botDoneMsg{
			player: player,
			move:   move,
			stats:  bot.Stats(),
			err:    err,
		}
	}
}

func (m *model) moveRight() (int, bool) {
	oCursor := m.cursor
	cursor := m.cursor

	if cursor >= 0 && cursor < len(m.board.Cells)-1 {
		cursor++
		for {
			if cursor > len(m.board.Cells)-1 {
				return oCursor, false
			}

			if m.board.Cells[cursor] == tictactoe.Empty {
				break
			}

			cursor++
		}
	}

	return cursor, cursor != oCursor
}

func (m *model) moveLeft() (int, bool) {
	oCursor := m.cursor
	cursor := m.cursor

	if cursor > 0 {
		cursor--
		for {
			if cursor < 0 {
				return oCursor, false
			}

			if m.board.Cells[cursor] == tictactoe.Empty {
				break
			}

			cursor--
		}
	}

	return cursor, cursor != oCursor
}

func (m *model) markStyle(p tictactoe.Mark) string {
	switch p {
	case tictactoe.X:
		return p1Style(p.String())
	case tictactoe.O:
		return p2Style(p.String())
	}

	return p.String()
}

func (m *model) View() string {
	if m.gameOver && m.Replay {
		return ""
	}

	var highlights []int
	if m.gameOver && m.outcome.Winner() != tictactoe.Empty {
		highlights = m.board.WinningLine(m.outcome.Winner())
	}

	s := m.header
	s += helpStyle(m.algorithm) + "\n\n"

	botTurn := m.botTurn()

	s += "Current player: " + m.markStyle(m.currentPlayer)
	if botTurn {
		s += " (computer) " + m.spinner.View()
	}

	s += "\n"

	for i, p := range m.board.Cells {
		mark := p.String()
		if m.cursor == i && !botTurn && !m.gameOver {
			mark = cursorStyle("*")
		}

		if botTurn && p == tictactoe.Empty {
			mark = []string{"o", "x", " ", " "}[rand.N(4)]
			mark = thinkingColors[rand.IntN(len(thinkingColors))](mark)
		}

		if p != tictactoe.Empty {
			mark = m.markStyle(p)
		}

		bStyle := bracketStyle
		winningRow := slices.Contains(highlights, i)

		if winningRow {
			bStyle = winningRowStyle
		}

		if m.board.LastMove == i && p != tictactoe.Empty {
			bStyle = lastMoveBracketStyle
			if winningRow {
				bStyle = lastWinningRowStyle
			}
		}

		s += fmt.Sprintf("%s%s%s", bStyle("["), mark, bStyle("]"))
		if (i+1)%boardN == 0 {
			s += "\n"
		}
	}

	if stats := m.lastStats; stats != nil && !botTurn {
		s += "\n"
		s += fmt.Sprintf(
			"Computer (%s) chose position %s\nSearched %s positions in %s - score %s, %s equally good moves\n",
			m.markStyle(m.lastBot),
			statStyle1(fmt.Sprintf("%d", stats.BestMove+1)),
			statStyle2(fmt.Sprintf("%d", stats.Nodes)),
			statStyle2(stats.ThinkTime.Round(time.Microsecond).String()),
			statStyle1(fmt.Sprintf("%+d", stats.BestScore)),
			statStyle1(fmt.Sprintf("%d", len(stats.Tied))),
		)

		if stats.Randomized {
			s += cursorStyle("RANDOM OPENING\n")
		}
	}

	if m.err != nil {
		s += "\n" + cursorStyle("ERROR: "+m.err.Error()) + "\n"
		return s
	}

	if m.gameOver {
		s += "\n" + gameOverText + "\n"

		if winner := m.outcome.Winner(); winner == tictactoe.Empty {
			s += cursorStyle("It's a tie!") + "\n"
		} else {
			s += fmt.Sprintf("%s (%s) wins!\n", m.name(winner), m.markStyle(winner))
		}

		s += fmt.Sprintf("Total time: %.2f seconds.\n", m.elapsed.Seconds())
		s += helpStyle("enter: play again • q: quit") + "\n"
		return s
	}

	if !botTurn {
		s += "\n" + helpStyle("arrows: move • enter or 1-9: play • q: quit") + "\n"
	}

	return s
}

const gameOverText = `ＧＡＭＥ ＯＶＥＲ`
