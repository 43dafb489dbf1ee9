package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wattype/internal/generator"
	"github.com/verte-zerg/wattype/internal/session"
)

func typed(passage generator.Passage, inputs ...string) session.Session {
	s := session.New(passage, session.DefaultBudget)
	start := time.Unix(0, 0)
	for i, in := range inputs {
		s = s.SubmitInput(in, start.Add(time.Duration(i)*time.Millisecond))
	}
	return s
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"ab"}, "a"))
	require.Len(t, runes, 2)
	assert.Equal(t, correctStyle.Render("a"), runes[0].s)
	assert.Equal(t, currentWordStyle.Underline(true).Render("b"), runes[1].s)
	assert.False(t, runes[0].cursor)
	assert.True(t, runes[1].cursor)
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"ab"}, "ax"))
	require.Len(t, runes, 3)
	assert.Equal(t, correctStyle.Render("a"), runes[0].s)
	assert.Equal(t, incorrectStyle.Render("b"), runes[1].s)
	assert.Equal(t, cursorStyle.Render(" "), runes[2].s, "cursor moves past a fully typed final word")
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"one", "two"}, "o"))
	require.Len(t, runes, 7)
	assert.Equal(t, correctStyle.Render("o"), runes[0].s)
	assert.Equal(t, currentWordStyle.Underline(true).Render("n"), runes[1].s)
	assert.Equal(t, currentWordStyle.Render("e"), runes[2].s)
	assert.True(t, runes[3].isSpace)
	assert.Equal(t, pendingStyle.Render(" "), runes[3].s)
	assert.Equal(t, pendingStyle.Render("t"), runes[4].s)
	assert.Equal(t, pendingStyle.Render("o"), runes[6].s)
}

func TestBuildStyledRunesCommittedWords(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"ab", "cd"}, "xb "))
	require.Len(t, runes, 5)
	assert.Equal(t, incorrectStyle.Render("a"), runes[0].s)
	assert.Equal(t, correctStyle.Render("b"), runes[1].s)
	assert.Equal(t, pendingStyle.Render(" "), runes[2].s)
	assert.True(t, runes[3].cursor)
}

func TestBuildStyledRunesCursorOnSpaceAfterWord(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"ab", "cd"}, "abc"))
	require.Len(t, runes, 5)
	assert.True(t, runes[2].cursor)
	assert.Equal(t, cursorStyle.Render(" "), runes[2].s)
	assert.False(t, runes[3].cursor)
}

func TestBuildStyledRunesPastPassageEnd(t *testing.T) {
	runes := buildStyledRunes(typed(generator.Passage{"a"}, "a ", "b "))
	require.Len(t, runes, 1)
	assert.Equal(t, correctStyle.Render("a"), runes[0].s)
	assert.False(t, containsCursor(runes))
}

func plain(text string, cursorAt int) []styledRune {
	out := make([]styledRune, 0, len(text))
	for i, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' ', cursor: i == cursorAt})
	}
	return out
}

func TestWrapLinesBreaksAtSpaces(t *testing.T) {
	lines, cursorLine := wrapLines(plain("one two three", 8), 7)
	require.Len(t, lines, 2)
	assert.Equal(t, "one two", renderStyledRunes(lines[0]))
	assert.Equal(t, "three", renderStyledRunes(lines[1]))
	assert.Equal(t, 1, cursorLine)
}

func TestWrapLinesCursorOnDroppedSpace(t *testing.T) {
	lines, cursorLine := wrapLines(plain("one two three", 7), 7)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, cursorLine)
}

func TestWrapLinesHardBreak(t *testing.T) {
	lines, cursorLine := wrapLines(plain("abcdefgh", 1), 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "abc", renderStyledRunes(lines[0]))
	assert.Equal(t, "gh", renderStyledRunes(lines[2]))
	assert.Equal(t, 0, cursorLine)
}

func TestVisibleLinesFollowsCursor(t *testing.T) {
	lines, cursorLine := wrapLines(plain("aa bb cc dd ee ff", 12), 2)
	require.Len(t, lines, 6)
	require.Equal(t, 4, cursorLine)
	assert.Equal(t, "dd\nee", visibleLines(lines, cursorLine, 2))
	assert.Equal(t, "aa\nbb", visibleLines(lines, 0, 2))
	assert.Equal(t, "ee\nff", visibleLines(lines, 5, 2))
	assert.Equal(t, "aa\nbb\ncc\ndd\nee\nff", visibleLines(lines, 5, 0))
}
