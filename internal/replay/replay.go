// Package replay drives a session from a scripted list of input events.
package replay

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/wattype/internal/generator"
	"github.com/verte-zerg/wattype/internal/session"
	"github.com/verte-zerg/wattype/internal/stats"
)

// Script describes a reproducible typing run.
type Script struct {
	Seed     int64         `yaml:"seed"`
	Words    int           `yaml:"words"`
	Duration time.Duration `yaml:"duration"`
	// WordList replaces the built-in dictionary when set.
	WordList []string `yaml:"wordlist,omitempty"`
	Events   []Event  `yaml:"events"`
}

// Event is either a new input buffer value or a bare clock tick, At after the
// script origin.
type Event struct {
	At    time.Duration `yaml:"at"`
	Input *string       `yaml:"input,omitempty"`
	Tick  bool          `yaml:"tick,omitempty"`
}

// Result is the outcome of running a script.
type Result struct {
	Session  session.Session
	Metrics  session.Metrics
	Timeline stats.Timeline
}

// Report converts the result into a printable report.
func (r Result) Report(seed int64) stats.Report {
	return stats.Report{
		Metrics:  r.Metrics,
		Timeline: r.Timeline,
		Chars:    stats.CharStats(r.Session),
		Seed:     seed,
		Words:    len(r.Session.Passage()),
	}
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if script.Duration == 0 {
		script.Duration = session.DefaultBudget
	}
	if err := script.Validate(); err != nil {
		return Script{}, err
	}
	return script, nil
}

// Validate checks the script for values a session cannot run with.
func (s Script) Validate() error {
	if s.Words <= 0 {
		return errors.New("words must be > 0")
	}
	if s.Duration <= 0 {
		return errors.New("duration must be > 0")
	}
	if s.Duration%time.Second != 0 {
		return fmt.Errorf("duration %s is not a whole number of seconds", s.Duration)
	}
	var prev time.Duration
	for i, ev := range s.Events {
		if ev.At < 0 {
			return fmt.Errorf("event %d: negative offset %s", i, ev.At)
		}
		if ev.At < prev {
			return fmt.Errorf("event %d: offset %s is before previous event at %s", i, ev.At, prev)
		}
		if (ev.Input == nil) == !ev.Tick {
			return fmt.Errorf("event %d: exactly one of input or tick must be set", i)
		}
		prev = ev.At
	}
	return nil
}

// Run feeds every event into a fresh session starting at origin. The clock is
// advanced to each event's time before its input is applied, as a UI timer
// running between keystrokes would.
func Run(script Script, origin time.Time) (Result, error) {
	gen := generator.Default()
	if len(script.WordList) > 0 {
		custom, err := generator.New(script.WordList)
		if err != nil {
			return Result{}, err
		}
		gen = custom
	}

	s := session.New(gen.Generate(script.Seed, script.Words), script.Duration)
	var timeline stats.Timeline
	for _, ev := range script.Events {
		now := origin.Add(ev.At)
		s = s.Tick(now)
		timeline.Record(s)
		if ev.Input != nil {
			s = s.SubmitInput(*ev.Input, now)
		}
	}
	return Result{
		Session:  s,
		Metrics:  s.Metrics(),
		Timeline: timeline,
	}, nil
}
