package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/wattype/internal/session"
)

const (
	terminalWidthBackup = 80
	sparkLabel          = "Speed  "
	// WeakCharLimit is the number of rows in the weakest characters table.
	WeakCharLimit = 5
)

// Report is the final summary of a session.
type Report struct {
	Metrics  session.Metrics
	Timeline Timeline
	Chars    []CharStat
	Seed     int64
	Words    int
}

// SummaryLines formats the result table for m.
func SummaryLines(m session.Metrics) []string {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"WPM", fmt.Sprintf("%.1f", m.WPM)},
		{"Raw WPM", fmt.Sprintf("%.1f", m.RawWPM)},
		{"Accuracy", fmt.Sprintf("%.1f%%", m.Accuracy)},
		{"Correct words", fmt.Sprintf("%d/%d", m.CorrectWords, m.TypedWords)},
		{"Correct chars", fmt.Sprintf("%d", m.CorrectChars)},
		{"Incorrect chars", fmt.Sprintf("%d", m.IncorrectChars)},
		{"Time", fmt.Sprintf("%.0fs", m.ElapsedSeconds)},
	}
	return formatTable(headers, rows, map[int]bool{1: true})
}

// SpeedLine renders the smoothed WPM sparkline within width columns.
func SpeedLine(t *Timeline, window, width int) string {
	if t.Len() == 0 {
		return ""
	}
	values := MovingAverage(t.WPM(), window)
	suffix := fmt.Sprintf("  peak %.1f", t.Peak())
	if width > 0 {
		room := width - len(sparkLabel) - len(suffix)
		if room > 0 && room < len(values) {
			values = Resample(values, room)
		}
	}
	return sparkLabel + Sparkline(values) + suffix
}

// RenderResults prints the summary table, the weakest characters and the
// speed sparkline.
func RenderResults(w io.Writer, r Report, window, width int) error {
	if _, err := fmt.Fprintf(w, "Results (seed %d, %d words)\n", r.Seed, r.Words); err != nil {
		return err
	}
	for _, line := range SummaryLines(r.Metrics) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if lines := CharTableLines(WeakestChars(r.Chars, WeakCharLimit)); len(lines) > 0 {
		if _, err := fmt.Fprintln(w, "\nWeakest characters"); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if line := SpeedLine(&r.Timeline, window, width); line != "" {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the width of stdout, or a fallback when it is not a
// terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
