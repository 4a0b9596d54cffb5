// Package tui is the dealer's screen: a single pass-and-play table rendered
// in the terminal, driven by short commands typed on behalf of whichever
// player holds the turn. Chips exist only here; the table itself stays
// clean of them.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tablefelt/dealerpad/internal/game"
	"github.com/tablefelt/dealerpad/internal/judge"
	"github.com/tablefelt/dealerpad/internal/store"
)

// Publisher receives table summaries after every accepted command. The
// spectator server implements it; a nil publisher is fine.
type Publisher interface {
	Publish(game.TableSummary)
}

// Model is the Bubble Tea model for the dealer screen.
type Model struct {
	session   *Session
	saver     *store.Store
	publisher Publisher
	logger    *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	status      string
	statusIsErr bool
	focusedPane int // 0 = log, 1 = input
	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates the dealer screen. saver and publisher may be nil to disable
// autosave and spectating.
func New(session *Session, saver *store.Store, publisher Publisher, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "check, call, bet 200, raise 500, fold, winner Alice, undo..."
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 80
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		session:     session,
		saver:       saver,
		publisher:   publisher,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
		status:      "type 'help' for commands",
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.persist()
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line != "" {
					if quit := m.execute(line); quit {
						m.quitting = true
						return m, tea.Sequence(tea.ClearScreen, tea.Quit)
					}
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// execute runs one command line. It returns true when the screen should
// close.
func (m *Model) execute(line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		m.fail(err)
		return false
	}

	switch cmd.Kind {
	case CmdCheck:
		m.apply(game.PlayerAction{Action: game.Check{}})
	case CmdCall:
		m.apply(game.PlayerAction{Action: game.Call{}})
	case CmdFold:
		m.apply(game.PlayerAction{Action: game.Fold{}})
	case CmdBet:
		m.apply(game.PlayerAction{Action: game.Bet{Amount: cmd.Amount}})
	case CmdRaise:
		m.apply(game.PlayerAction{Action: game.Raise{To: cmd.Amount}})

	case CmdUndo:
		if m.session.Undo() {
			m.ok("took back the last action")
			m.afterChange()
		} else {
			m.fail(fmt.Errorf("nothing to undo"))
		}

	case CmdNext:
		round := m.session.Game.Table.Round.Next()
		if cmd.Text != "" {
			round = game.Round(cmd.Text)
		}
		m.applyWith(game.AdvanceStage{Round: round}, fmt.Sprintf("round is now %s", round))

	case CmdPot:
		m.applyWith(game.UpdatePot{Pot: cmd.Amount}, fmt.Sprintf("pot corrected to %d", cmd.Amount))

	case CmdName:
		m.applyWith(game.SetTableName{Name: cmd.Text}, fmt.Sprintf("table renamed to %s", cmd.Text))

	case CmdWinner:
		winnerID, err := m.session.ResolveWinner(cmd.Text)
		if err != nil {
			m.fail(err)
			return false
		}
		m.apply(game.ResolveShowdown{WinnerID: winnerID})

	case CmdJudge:
		m.runJudge(cmd.Text)

	case CmdSave:
		m.persist()
		if m.saver != nil {
			m.ok("saved to " + m.saver.Path())
		} else {
			m.fail(fmt.Errorf("no save file configured"))
		}

	case CmdHelp:
		m.status = helpText
		m.statusIsErr = false

	case CmdQuit:
		m.persist()
		return true
	}

	return false
}

func (m *Model) apply(ev game.Event) {
	m.applyWith(ev, "")
}

func (m *Model) applyWith(ev game.Event, okStatus string) {
	if err := m.session.Apply(ev); err != nil {
		m.fail(err)
		return
	}
	m.ok(okStatus)
	m.afterChange()
}

// afterChange runs the side effects of an accepted transition: autosave and
// spectator broadcast. Neither can reject the transition.
func (m *Model) afterChange() {
	m.persist()
	if m.publisher != nil {
		m.publisher.Publish(game.Summarize(m.session.Game))
	}
}

func (m *Model) persist() {
	if m.saver == nil {
		return
	}
	if _, err := m.saver.Save(m.session.Snapshot()); err != nil {
		m.logger.Error("Autosave failed", "error", err)
		m.fail(fmt.Errorf("autosave failed: %w", err))
	}
}

func (m *Model) runJudge(input string) {
	board, hole, _ := strings.Cut(input, "/")
	result := judge.Judge(board, hole)

	switch result.Status {
	case judge.StatusOK:
		m.ok(fmt.Sprintf("%s — %s", result.Category, result.Detail))
	case judge.StatusInsufficient:
		m.status = result.Guide
		m.statusIsErr = false
	default:
		m.fail(fmt.Errorf("%s", strings.Join(result.Errors, "; ")))
	}
}

func (m *Model) ok(status string) {
	m.status = status
	m.statusIsErr = false
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.statusIsErr = true
	m.logger.Debug("Command rejected", "error", err)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(fmt.Sprintf(" %s ", m.session.Game.TableName))
	table := m.renderTable()
	actions := m.renderActions()

	m.logViewport.SetContent(m.renderLog())

	bottom := m.renderBottom()
	fixedHeight := lipgloss.Height(header) + lipgloss.Height(table) +
		lipgloss.Height(actions) + lipgloss.Height(bottom)

	logHeight := m.height - fixedHeight - 2
	if logHeight < 1 {
		logHeight = 1
	}
	logWidth := m.width - 2
	if logWidth < 1 {
		logWidth = 1
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoTop()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		table,
		actions,
		logStyle.Render(m.logViewport.View()),
		bottom,
	)
}

// renderTable renders the seats with button and turn markers.
func (m *Model) renderTable() string {
	g := m.session.Game
	var b strings.Builder

	b.WriteString(PotStyle.Render(fmt.Sprintf("Pot: %d", g.Table.Pot)))
	b.WriteString(InfoStyle.Render(fmt.Sprintf("   Round: %s", g.Table.Round)))
	if g.Table.CurrentBet > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("   To match: %d", g.Table.CurrentBet)))
	}
	b.WriteString("\n")

	for i, p := range g.Players {
		marker := "  "
		if i == g.Table.ButtonIndex {
			marker = "D "
		}
		turn := "  "
		if p.ID == g.Table.CurrentPlayerID {
			turn = "→ "
		}

		line := fmt.Sprintf("%s%s%-12s stack %5d", turn, marker, p.Name, p.Stack)
		if p.BetThisRound > 0 {
			line += fmt.Sprintf("   bet %d", p.BetThisRound)
		}

		switch {
		case !p.IsActive():
			line = FoldedStyle.Render(line + "   folded")
		case p.ID == g.Table.CurrentPlayerID:
			line = TurnStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderActions shows what the player on turn may legally do, with reasons
// for anything disabled.
func (m *Model) renderActions() string {
	g := m.session.Game
	current, ok := game.CurrentPlayer(g)
	if !ok {
		if g.Table.Round == game.Showdown {
			return ActionsStyle.Render("Showdown — 'winner <player>' to award the pot") + "\n"
		}
		return InfoStyle.Render("No action pending") + "\n"
	}

	var parts []string
	for _, a := range game.AvailableActions(g, current) {
		label := strings.ToLower(string(a.Action))
		if a.Action == game.ActionCall {
			label = fmt.Sprintf("call %d", game.ToCall(g, current))
		}
		if a.Enabled {
			parts = append(parts, SuccessStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, InfoStyle.Render("["+label+": "+a.Reason+"]"))
		}
	}
	return fmt.Sprintf("%s may: %s\n", current.Name, strings.Join(parts, " "))
}

// renderLog narrates the hand, newest first.
func (m *Model) renderLog() string {
	logs := m.session.Logs
	if len(logs) == 0 {
		return InfoStyle.Render("No actions yet this session.")
	}

	var b strings.Builder
	for _, entry := range logs {
		line := fmt.Sprintf("[%s] %s %s", entry.Round, entry.PlayerName, strings.ToLower(string(entry.Action)))
		if entry.Amount > 0 {
			line += fmt.Sprintf(" %d", entry.Amount)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderBottom() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.status != "" {
		if m.statusIsErr {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(SuccessStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	return b.String()
}

// Run starts the screen and blocks until it closes.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
