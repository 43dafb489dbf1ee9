package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wattype/internal/session"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	cursor  bool
}

// buildStyledRunes styles every passage character against what has been
// typed for its word. Completed and current words are coloured per position;
// later words are pending. The cursor sits on the next character of the
// current word, or on the following space once the word is fully typed.
func buildStyledRunes(s session.Session) []styledRune {
	passage := s.Passage()
	current := s.WordIndex()
	currentRunes := []rune(s.CurrentWord())
	out := make([]styledRune, 0, len(passage.String()))

	for wi, word := range passage {
		if wi > 0 {
			prevCurrent := wi-1 == current
			out = append(out, spaceRune(prevCurrent && len(currentRunes) >= len([]rune(passage[wi-1]))))
		}
		var typed []rune
		switch {
		case wi < current:
			typed = []rune(s.TypedWord(wi))
		case wi == current:
			typed = currentRunes
		}
		for ci, target := range []rune(word) {
			style := pendingStyle
			switch {
			case wi <= current && ci < len(typed):
				if typed[ci] == target {
					style = correctStyle
				} else {
					style = incorrectStyle
				}
			case wi == current:
				style = currentWordStyle
			}
			cursor := wi == current && ci == len(typed)
			if cursor {
				style = style.Underline(true)
			}
			out = append(out, styledRune{
				s:      style.Render(string(target)),
				width:  runewidth.RuneWidth(target),
				cursor: cursor,
			})
		}
	}
	if n := len(passage); n > 0 && current == n-1 && len(currentRunes) >= len([]rune(passage[n-1])) {
		out = append(out, spaceRune(true))
	}
	return out
}

func spaceRune(cursor bool) styledRune {
	style := pendingStyle
	if cursor {
		style = cursorStyle
	}
	return styledRune{s: style.Render(" "), width: 1, isSpace: true, cursor: cursor}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapLines breaks runes into lines of at most width cells, preferring to
// break at spaces. The breaking space is dropped. It also returns the index of
// the line holding the cursor.
func wrapLines(runes []styledRune, width int) ([][]styledRune, int) {
	cursorLine := 0
	if width <= 0 {
		return [][]styledRune{runes}, cursorLine
	}
	var lines [][]styledRune
	line := make([]styledRune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace {
				lines = append(lines, line)
				if item.cursor {
					cursorLine = len(lines)
				}
				line = []styledRune{}
				lineWidth = 0
				lastSpaceIdx = -1
				i++
				continue
			}
			if lastSpaceIdx >= 0 {
				moved := line[lastSpaceIdx+1:]
				if line[lastSpaceIdx].cursor || containsCursor(moved) {
					cursorLine = len(lines) + 1
				}
				lines = append(lines, line[:lastSpaceIdx])
				line = append([]styledRune{}, moved...)
			} else {
				lines = append(lines, line)
				line = []styledRune{}
			}
			lineWidth = lineWidthOf(line)
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		if item.cursor {
			cursorLine = len(lines)
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(lines, line), cursorLine
}

// visibleLines renders at most limit lines, keeping the cursor line in view
// with one line of context above it.
func visibleLines(lines [][]styledRune, cursorLine, limit int) string {
	if limit > 0 && len(lines) > limit {
		start := max(0, min(cursorLine-1, len(lines)-limit))
		lines = lines[start : start+limit]
	}
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderStyledRunes(line)
	}
	return strings.Join(rendered, "\n")
}

func containsCursor(line []styledRune) bool {
	for _, item := range line {
		if item.cursor {
			return true
		}
	}
	return false
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
