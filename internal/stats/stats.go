// Package stats records the in-memory speed timeline of a session and renders
// results.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/wattype/internal/session"
)

const sparkChars = " .:-=+*#%@"

// Sample is the state of a running session at a whole elapsed second.
type Sample struct {
	Second   int
	WPM      float64
	RawWPM   float64
	Accuracy float64
}

// Timeline collects one sample per elapsed second.
type Timeline struct {
	samples []Sample
}

// Record appends a sample for the session if a new whole second has elapsed
// since the last recorded one. It reports whether a sample was added.
func (t *Timeline) Record(s session.Session) bool {
	if !s.Started() {
		return false
	}
	m := s.Metrics()
	second := int(m.ElapsedSeconds)
	if second <= 0 {
		return false
	}
	if n := len(t.samples); n > 0 && t.samples[n-1].Second >= second {
		return false
	}
	t.samples = append(t.samples, Sample{
		Second:   second,
		WPM:      m.WPM,
		RawWPM:   m.RawWPM,
		Accuracy: m.Accuracy,
	})
	return true
}

// Samples returns a copy of the recorded samples.
func (t *Timeline) Samples() []Sample {
	return append([]Sample(nil), t.samples...)
}

// Len returns the number of samples.
func (t *Timeline) Len() int {
	return len(t.samples)
}

// Reset drops all samples.
func (t *Timeline) Reset() {
	t.samples = nil
}

// WPM returns the WPM series.
func (t *Timeline) WPM() []float64 {
	out := make([]float64, len(t.samples))
	for i, s := range t.samples {
		out[i] = s.WPM
	}
	return out
}

// RawWPM returns the raw WPM series.
func (t *Timeline) RawWPM() []float64 {
	out := make([]float64, len(t.samples))
	for i, s := range t.samples {
		out[i] = s.RawWPM
	}
	return out
}

// Peak returns the highest recorded WPM.
func (t *Timeline) Peak() float64 {
	peak := 0.0
	for _, s := range t.samples {
		if s.WPM > peak {
			peak = s.WPM
		}
	}
	return peak
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Resample stretches or shrinks values to width points using nearest
// neighbours.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 || len(values) == width {
		return append([]float64(nil), values...)
	}
	out := make([]float64, width)
	for i := range out {
		src := i * len(values) / width
		out[i] = values[src]
	}
	return out
}
