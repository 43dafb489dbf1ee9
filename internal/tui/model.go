// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wattype/internal/generator"
	"github.com/verte-zerg/wattype/internal/model"
	"github.com/verte-zerg/wattype/internal/session"
	"github.com/verte-zerg/wattype/internal/stats"
)

const (
	frameInterval = 100 * time.Millisecond
	passageLines  = 4
	wpmBarScale   = 100.0

	graphRows      = 6
	graphMinHeight = 28
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	resultsStyle     = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// tickMsg carries a clock reading for the session generation that scheduled it.
type tickMsg struct {
	generation int
	at         time.Time
}

// Model implements the Bubble Tea typing UI. It owns the current session and
// drives its clock while it is running.
type Model struct {
	config model.Config
	gen    *generator.Generator
	logger *slog.Logger
	now    func() time.Time

	keys    keyMap
	help    help.Model
	input   textinput.Model
	timeBar progress.Model
	wpmBar  progress.Model

	seed       int64
	generation int
	session    session.Session
	timeline   stats.Timeline

	width  int
	height int
}

// NewModel constructs a typing TUI model. The first passage uses cfg.Seed
// unless cfg.RandomSeed is set; restarts always draw a fresh seed.
func NewModel(cfg model.Config, gen *generator.Generator, logger *slog.Logger) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "start typing"
	input.Focus()

	m := &Model{
		config:  cfg,
		gen:     gen,
		logger:  logger,
		now:     time.Now,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		timeBar: progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage()),
		wpmBar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	seed := cfg.Seed
	if cfg.RandomSeed {
		seed = generator.RandomSeed()
	}
	m.reset(seed)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timeBar.Width = m.contentWidth()
		m.wpmBar.Width = m.contentWidth()
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		return m, m.restart()
	case m.session.Finished():
		if key.Matches(msg, m.keys.Confirm) {
			return m, m.restart()
		}
		return m, nil
	}

	prev := m.input.Value()
	wasStarted := m.session.Started()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == prev {
		return m, cmd
	}

	m.session = m.session.SubmitInput(value, m.now())
	if value != m.session.CurrentWord() {
		m.input.SetValue(m.session.CurrentWord())
	}
	if !wasStarted && m.session.Started() {
		m.logger.Debug("session started", "seed", m.seed, "words", len(m.session.Passage()))
		return m, tea.Batch(cmd, m.tick())
	}
	return m, cmd
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.generation != m.generation || m.session.Finished() {
		return nil
	}
	m.session = m.session.Tick(msg.at)
	m.timeline.Record(m.session)
	if m.session.Finished() {
		m.input.Blur()
		metrics := m.session.Metrics()
		m.logger.Info("session finished",
			"seed", m.seed,
			"wpm", metrics.WPM,
			"accuracy", metrics.Accuracy,
			"correct_words", metrics.CorrectWords,
			"peak_wpm", m.timeline.Peak(),
		)
		m.logger.Debug("speed timeline", "samples", m.timeline.Samples())
		return nil
	}
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

func (m *Model) restart() tea.Cmd {
	m.reset(generator.RandomSeed())
	m.logger.Debug("session restarted", "seed", m.seed)
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) reset(seed int64) {
	m.generation++
	m.seed = seed
	m.session = session.New(m.gen.Generate(seed, m.config.Words), m.config.Duration)
	m.timeline.Reset()
	m.input.Reset()
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.session.Finished() {
		body = m.renderResults()
	} else {
		body = m.renderTyping()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	footer := footerStyle.Render(m.renderFooter())
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	return content + "\n" + lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *Model) renderTyping() string {
	width := m.contentWidth()
	lines, cursorLine := wrapLines(buildStyledRunes(m.session), width)
	passage := visibleLines(lines, cursorLine, passageLines)

	remaining := m.session.Remaining(m.now())
	fraction := float64(remaining) / float64(m.session.Budget())
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("wattype"),
		"  ",
		timerStyle.Render(fmt.Sprintf("%ds", m.session.TimeLeft())),
	)
	sections := []string{
		header,
		m.timeBar.ViewAs(fraction),
		"",
		lipgloss.NewStyle().Width(width).Render(passage),
		"",
		m.input.View(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderResults() string {
	metrics := m.session.Metrics()
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%.0f WPM", metrics.WPM)),
		m.wpmBar.ViewAs(min(1, metrics.WPM/wpmBarScale)),
		"",
	}
	summary := strings.Join(stats.SummaryLines(metrics), "\n")
	weakest := stats.WeakestChars(stats.CharStats(m.session), stats.WeakCharLimit)
	if chars := stats.CharTableLines(weakest); len(chars) > 0 {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, summary, "    ", strings.Join(chars, "\n"))
	}
	lines = append(lines, summary)
	if graph := m.renderGraph(); graph != "" {
		lines = append(lines, "", graph)
	} else if speed := stats.SpeedLine(&m.timeline, m.config.Smooth, m.contentWidth()); speed != "" {
		lines = append(lines, "", speed)
	}
	return resultsStyle.Render(strings.Join(lines, "\n"))
}

// renderGraph draws the speed graph when the window is tall enough for it.
func (m *Model) renderGraph() string {
	if m.height < graphMinHeight || m.timeline.Len() < 2 {
		return ""
	}
	var b strings.Builder
	series := stats.TimelineSeries(&m.timeline, m.config.Smooth)
	if err := stats.PlotSeries(&b, series, m.contentWidth(), graphRows); err != nil {
		m.logger.Warn("failed to render speed graph", "err", err)
		return ""
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderFooter() string {
	metrics := m.session.Metrics()
	segments := []string{
		fmt.Sprintf("Seed %d", m.seed),
		fmt.Sprintf("Words %d/%d", metrics.CorrectWords, len(m.session.Passage())),
		fmt.Sprintf("%.0f%% done", m.session.Progress()*100),
		fmt.Sprintf("%.1f WPM", metrics.WPM),
		fmt.Sprintf("%.1f%%", metrics.Accuracy),
	}
	bindings := m.keys.typingHelp()
	if m.session.Finished() {
		bindings = m.keys.resultsHelp()
	}
	return strings.Join(segments, "  ") + "  " + m.help.ShortHelpView(bindings)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(1, int(float64(m.width)*0.70))
}
