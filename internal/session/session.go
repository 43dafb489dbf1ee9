// Package session implements the typing session state machine.
//
// A Session is a value: every operation takes the current session and
// returns the next one, leaving the receiver untouched. Callers are expected
// to drive it from a single event loop.
package session

import (
	"strings"
	"time"

	"github.com/verte-zerg/wattype/internal/generator"
)

// DefaultBudget is the time allowed for a session.
const DefaultBudget = 30 * time.Second

// Delimiter separates words in passages and typed input.
const Delimiter = " "

// State is the lifecycle stage of a session.
type State int

const (
	// NotStarted means no input has been received yet.
	NotStarted State = iota
	// Running means the clock is counting down.
	Running
	// Finished means the time budget is spent. It is terminal.
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session holds the state of one typing run.
type Session struct {
	passage generator.Passage
	budget  time.Duration

	typedWords  []string
	currentWord string

	started   bool
	finished  bool
	startTime time.Time
	timeLeft  int
}

// Start builds a session over a fresh passage from the built-in dictionary.
func Start(seed int64, wordCount int) Session {
	return New(generator.Generate(seed, wordCount), DefaultBudget)
}

// New returns a session over passage with the given time budget.
// A non-positive budget falls back to DefaultBudget.
func New(passage generator.Passage, budget time.Duration) Session {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return Session{
		passage:  passage,
		budget:   budget,
		timeLeft: ceilSeconds(budget),
	}
}

// SubmitInput applies the full current contents of the input buffer.
// A value ending in the delimiter commits the word regardless of whether it
// matches the passage.
func (s Session) SubmitInput(raw string, now time.Time) Session {
	if s.finished {
		return s
	}
	if raw != "" && !s.started {
		s.started = true
		s.startTime = now
	}
	if raw != "" && strings.HasSuffix(raw, Delimiter) {
		word := strings.TrimRight(raw, " \t\r\n")
		typed := make([]string, len(s.typedWords), len(s.typedWords)+1)
		copy(typed, s.typedWords)
		s.typedWords = append(typed, word)
		s.currentWord = ""
		return s
	}
	s.currentWord = raw
	return s
}

// Tick advances the clock to now. It does nothing before the first input
// or after the session has finished.
func (s Session) Tick(now time.Time) Session {
	if !s.started || s.finished {
		return s
	}
	remaining := s.Remaining(now)
	s.timeLeft = ceilSeconds(remaining)
	if remaining == 0 {
		s.finished = true
	}
	return s
}

// Remaining returns the unrounded time left at now.
func (s Session) Remaining(now time.Time) time.Duration {
	if !s.started {
		return s.budget
	}
	if s.finished {
		return 0
	}
	remaining := s.startTime.Add(s.budget).Sub(now)
	if remaining < 0 {
		return 0
	}
	if remaining > s.budget {
		return s.budget
	}
	return remaining
}

// State reports the lifecycle stage.
func (s Session) State() State {
	switch {
	case s.finished:
		return Finished
	case s.started:
		return Running
	default:
		return NotStarted
	}
}

// Passage returns the target passage.
func (s Session) Passage() generator.Passage {
	return s.passage
}

// Budget returns the session time budget.
func (s Session) Budget() time.Duration {
	return s.budget
}

// TypedWords returns a copy of the committed words.
func (s Session) TypedWords() []string {
	return append([]string(nil), s.typedWords...)
}

// TypedWord returns the committed word at index i, or "".
func (s Session) TypedWord(i int) string {
	if i < 0 || i >= len(s.typedWords) {
		return ""
	}
	return s.typedWords[i]
}

// CurrentWord returns the in-progress input buffer.
func (s Session) CurrentWord() string {
	return s.currentWord
}

// WordIndex returns the index of the word being typed. It always equals the
// number of committed words.
func (s Session) WordIndex() int {
	return len(s.typedWords)
}

// TargetWord returns the passage word at the current index, or "" past the end.
func (s Session) TargetWord() string {
	return s.passage.Word(s.WordIndex())
}

// Started reports whether the first non-empty input has been received.
func (s Session) Started() bool {
	return s.started
}

// Finished reports whether the budget has run out. It never reverts.
func (s Session) Finished() bool {
	return s.finished
}

// StartTime returns the instant of the first input, or the zero time.
func (s Session) StartTime() time.Time {
	return s.startTime
}

// TimeLeft returns the whole seconds left, rounded up.
func (s Session) TimeLeft() int {
	return s.timeLeft
}

// Progress returns the fraction of passage words committed, capped at 1.
func (s Session) Progress() float64 {
	if len(s.passage) == 0 {
		return 0
	}
	p := float64(len(s.typedWords)) / float64(len(s.passage))
	if p > 1 {
		return 1
	}
	return p
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
