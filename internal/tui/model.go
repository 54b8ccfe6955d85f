// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/session"
	"github.com/verte-zerg/speedtype/internal/stats"
)

const inputCharLimit = 64

// Model implements the Bubble Tea typing UI. It renders session snapshots and
// forwards keys; all test logic lives in the session.
type Model struct {
	sess  *session.Session
	sched *Scheduler
	input textinput.Model
	help  help.Model
	keys  keyMap

	width  int
	height int

	lastPhase model.Phase
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	selectedStyle    = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	unselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(1, 4)
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs a typing TUI model. sched must be the scheduler that
// drives the session's timers.
func NewModel(sess *session.Session, sched *Scheduler) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Start typing the word above..."
	input.CharLimit = inputCharLimit
	input.Blur()

	keys := newKeyMap()
	keys.phase = sess.Phase()
	return &Model{
		sess:      sess,
		sched:     sched,
		input:     input,
		help:      help.New(),
		keys:      keys,
		lastPhase: sess.Phase(),
	}
}

// Snapshot returns the current session state.
func (m *Model) Snapshot() model.Snapshot {
	return m.sess.Snapshot()
}

// Result returns the outcome of the last run, if the session is Finished.
func (m *Model) Result() (stats.Result, bool) {
	return m.sess.Result()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case timerFiredMsg:
		m.sched.Fire(msg.id)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
	default:
		if m.sess.Phase() == model.PhaseRunning {
			m.input, cmd = m.input.Update(msg)
		}
	}
	return m, tea.Batch(cmd, m.syncPhase(), m.sched.Cmd())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch m.sess.Phase() {
	case model.PhaseIdle:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.cycleDuration(-1)
		case key.Matches(msg, m.keys.Next):
			m.cycleDuration(1)
		case key.Matches(msg, m.keys.Start):
			m.sess.BeginCountdown()
		case key.Matches(msg, m.keys.Quit):
			return nil, true
		}
	case model.PhaseCountingDown:
		if key.Matches(msg, m.keys.Quit) {
			return nil, true
		}
	case model.PhaseRunning:
		return m.handleTyping(msg), false
	case model.PhaseFinished:
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.sess.Restart()
		case key.Matches(msg, m.keys.Reset):
			m.sess.Reset()
		case key.Matches(msg, m.keys.Quit):
			return nil, true
		}
	}
	return nil, false
}

func (m *Model) handleTyping(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == m.sess.Snapshot().TypedBuffer {
		return cmd
	}
	m.sess.HandleInput(value)
	if buf := m.sess.Snapshot().TypedBuffer; buf != value {
		m.input.SetValue(buf)
	}
	return cmd
}

func (m *Model) cycleDuration(delta int) {
	current := m.sess.Snapshot().Duration
	idx := 0
	for i, d := range model.Durations {
		if d == current {
			idx = i
			break
		}
	}
	n := len(model.Durations)
	next := model.Durations[((idx+delta)%n+n)%n]
	if m.sess.SetDuration(int(next)) {
		log.Printf("duration set to %ds", next)
	}
}

// syncPhase adjusts the input focus after a phase change.
func (m *Model) syncPhase() tea.Cmd {
	phase := m.sess.Phase()
	if phase == m.lastPhase {
		return nil
	}
	log.Printf("phase %s -> %s", m.lastPhase, phase)
	if phase == model.PhaseFinished {
		log.Printf("finished: %d words in %ds", m.sess.Snapshot().CorrectWordCount, m.sess.Snapshot().Duration)
	}
	m.lastPhase = phase
	m.keys.phase = phase
	m.input.Reset()
	if phase == model.PhaseRunning {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.sess.Snapshot()
	var body string
	switch snap.Phase {
	case model.PhaseIdle:
		body = m.renderIdle(snap)
	case model.PhaseCountingDown:
		body = countdownStyle.Render(strconv.Itoa(snap.CountdownValue))
	case model.PhaseRunning:
		body = m.renderRunning(snap)
	case model.PhaseFinished:
		body = m.renderResult()
	}
	content := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render("Typing Speed Test"), "", body)
	helpLine := m.help.View(m.keys)
	if m.width == 0 || m.height < 3 {
		return content + "\n\n" + helpLine
	}
	bodyHeight := m.height - 1
	centered := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return centered + "\n" + footer
}

func (m *Model) renderIdle(snap model.Snapshot) string {
	options := make([]string, 0, len(model.Durations))
	for _, d := range model.Durations {
		label := fmt.Sprintf("%ds", d)
		if d == snap.Duration {
			options = append(options, selectedStyle.Render(label))
		} else {
			options = append(options, unselectedStyle.Render(label))
		}
	}
	selector := lipgloss.JoinHorizontal(lipgloss.Center, append([]string{labelStyle.Render("Duration ")}, options...)...)
	return lipgloss.JoinVertical(lipgloss.Center,
		selector,
		"",
		m.renderWords(snap),
		"",
		labelStyle.Render("Press enter to start"),
	)
}

func (m *Model) renderRunning(snap model.Snapshot) string {
	status := fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Time Left:"),
		valueStyle.Render(fmt.Sprintf("%ds", snap.TimeLeft)),
		labelStyle.Render("Words Typed:"),
		valueStyle.Render(strconv.Itoa(snap.CorrectWordCount)),
	)
	return lipgloss.JoinVertical(lipgloss.Center, status, "", m.renderWords(snap), "", m.input.View())
}

func (m *Model) renderWords(snap model.Snapshot) string {
	current := snap.CurrentWordIndex
	typed := snap.TypedBuffer
	if snap.Phase != model.PhaseRunning {
		current, typed = -1, ""
	}
	runes := buildStyledRunes(snap.Words, current, typed)
	return wrapStyledRunes(runes, m.contentWidth())
}

func (m *Model) renderResult() string {
	res, ok := m.sess.Result()
	if !ok {
		return ""
	}
	lines := []string{
		titleStyle.Render("Your Result"),
		"",
		res.Summary(),
		fmt.Sprintf("%s %s", labelStyle.Render("Rate:"),
			valueStyle.Render(fmt.Sprintf("%.1f WPM", res.WordsPerMinute()))),
	}
	if len(res.Pace) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Pace:"), stats.Sparkline(stats.PaceDeltas(res.Pace))))
	}
	width := m.contentWidth()
	style := modalStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}
