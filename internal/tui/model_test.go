package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wattype/internal/generator"
	"github.com/verte-zerg/wattype/internal/logging"
	"github.com/verte-zerg/wattype/internal/model"
	"github.com/verte-zerg/wattype/internal/session"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := model.Config{Words: 5, Duration: 30 * time.Second, Seed: 42, Smooth: 1}
	m := NewModel(cfg, generator.Default(), logging.Discard())
	m.now = clock.now
	return m, clock
}

func typeString(m *Model, text string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		_, cmd := m.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func TestNewModelUsesConfiguredSeed(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, int64(42), m.seed)
	assert.Equal(t, "large before plan man first", m.session.Passage().String())
	assert.Equal(t, session.NotStarted, m.session.State())
}

func TestTypingStartsSessionAndSchedulesTick(t *testing.T) {
	m, clock := newTestModel(t)
	cmds := typeString(m, "l")
	require.Len(t, cmds, 1)
	assert.NotNil(t, cmds[0], "first input must schedule the clock")
	assert.True(t, m.session.Started())
	assert.Equal(t, clock.t, m.session.StartTime())
	assert.Equal(t, "l", m.session.CurrentWord())
}

func TestSpaceCommitsWordAndClearsInput(t *testing.T) {
	m, _ := newTestModel(t)
	typeString(m, "large ")
	assert.Equal(t, []string{"large"}, m.session.TypedWords())
	assert.Contains(t, m.renderFooter(), "20% done")
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, "", m.session.CurrentWord())

	typeString(m, "bx")
	assert.Equal(t, "bx", m.input.Value())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "b", m.session.CurrentWord())

	metrics := m.session.Metrics()
	assert.Equal(t, 1, metrics.CorrectWords)
	assert.Equal(t, 7, metrics.CorrectChars)
}

func TestTickFinishesSession(t *testing.T) {
	m, clock := newTestModel(t)
	typeString(m, "large ")
	gen := m.generation

	_, cmd := m.Update(tickMsg{generation: gen, at: clock.advance(1500 * time.Millisecond)})
	assert.NotNil(t, cmd)
	assert.Equal(t, 29, m.session.TimeLeft())
	assert.Equal(t, 1, m.timeline.Len())

	_, cmd = m.Update(tickMsg{generation: gen, at: clock.advance(29 * time.Second)})
	assert.Nil(t, cmd, "finished session stops ticking")
	assert.True(t, m.session.Finished())
	assert.Equal(t, 2, m.timeline.Len())

	typeString(m, "before ")
	assert.Equal(t, []string{"large"}, m.session.TypedWords(), "input after finish is ignored")

	m.width, m.height = 100, 30
	view := m.View()
	assert.Contains(t, view, "WPM")
	assert.Contains(t, view, "Accuracy")
	assert.Contains(t, view, "<space>")
}

func TestStaleTickIgnoredAfterRestart(t *testing.T) {
	m, clock := newTestModel(t)
	typeString(m, "la")
	stale := m.generation

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.NotNil(t, cmd)
	assert.NotEqual(t, stale, m.generation)
	assert.Equal(t, session.NotStarted, m.session.State())
	assert.Equal(t, "", m.input.Value())

	_, cmd = m.Update(tickMsg{generation: stale, at: clock.advance(time.Minute)})
	assert.Nil(t, cmd)
	assert.False(t, m.session.Finished())
	assert.Equal(t, 30, m.session.TimeLeft())
}

func TestEnterRestartsOnlyWhenFinished(t *testing.T) {
	m, clock := newTestModel(t)
	typeString(m, "l")
	gen := m.generation

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, gen, m.generation)

	_, _ = m.Update(tickMsg{generation: gen, at: clock.advance(30 * time.Second)})
	require.True(t, m.session.Finished())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, gen+1, m.generation)
	assert.Equal(t, session.NotStarted, m.session.State())
	assert.Equal(t, 0, m.timeline.Len())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewWhileTyping(t *testing.T) {
	m, _ := newTestModel(t)
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	typeString(m, "la")
	view := m.View()
	assert.Contains(t, view, "wattype")
	assert.Contains(t, view, "30s")
	assert.Contains(t, view, "Seed 42")
	assert.Equal(t, 20, len(strings.Split(view, "\n")))
}
