package stats

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/wattype/internal/session"
)

const spaceLabel = "<space>"

// CharStat tallies how often one passage character was typed right or wrong.
type CharStat struct {
	Char      rune
	Correct   int
	Incorrect int
}

// Total returns the number of attempts at the character.
func (c CharStat) Total() int {
	return c.Correct + c.Incorrect
}

// Accuracy returns the fraction of correct attempts, or 1 without attempts.
func (c CharStat) Accuracy() float64 {
	if c.Total() == 0 {
		return 1
	}
	return float64(c.Correct) / float64(c.Total())
}

// CharStats compares every typed position of s against the passage character
// it was meant to match, ordered by character. Runes typed past the end of a
// word have no passage character and are not counted. A committed word inside
// the passage counts its delimiter as a correct space.
func CharStats(s session.Session) []CharStat {
	tally := map[rune]*CharStat{}
	add := func(target rune, ok bool) {
		c, found := tally[target]
		if !found {
			c = &CharStat{Char: target}
			tally[target] = c
		}
		if ok {
			c.Correct++
		} else {
			c.Incorrect++
		}
	}
	compare := func(typed, target string) {
		targetRunes := []rune(target)
		for i, r := range []rune(typed) {
			if i >= len(targetRunes) {
				return
			}
			add(targetRunes[i], r == targetRunes[i])
		}
	}

	passage := s.Passage()
	for i, typed := range s.TypedWords() {
		compare(typed, passage.Word(i))
		if i < len(passage) {
			add(' ', true)
		}
	}
	compare(s.CurrentWord(), s.TargetWord())

	out := make([]CharStat, 0, len(tally))
	for _, c := range tally {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Char < out[j].Char
	})
	return out
}

// WeakestChars returns the n characters with the lowest accuracy. Ties go to
// the more frequent character, then to character order. n <= 0 keeps all.
func WeakestChars(chars []CharStat, n int) []CharStat {
	out := append([]CharStat(nil), chars...)
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i].Accuracy(), out[j].Accuracy()
		if ai != aj {
			return ai < aj
		}
		if out[i].Total() != out[j].Total() {
			return out[i].Total() > out[j].Total()
		}
		return out[i].Char < out[j].Char
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// CharTableLines formats chars as a table in the given order.
func CharTableLines(chars []CharStat) []string {
	if len(chars) == 0 {
		return nil
	}
	headers := []string{"Char", "Accuracy", "Correct", "Incorrect"}
	rows := make([][]string, 0, len(chars))
	for _, c := range chars {
		label := string(c.Char)
		if c.Char == ' ' {
			label = spaceLabel
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%.1f%%", c.Accuracy()*100),
			fmt.Sprintf("%d", c.Correct),
			fmt.Sprintf("%d", c.Incorrect),
		})
	}
	return formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true})
}
