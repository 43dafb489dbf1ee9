package session

// charsPerWord is the standard word length used for speed calculations.
const charsPerWord = 5.0

// Metrics summarizes speed and accuracy for a session.
type Metrics struct {
	ElapsedSeconds float64
	CorrectChars   int
	IncorrectChars int
	TotalChars     int
	// Accuracy is a percentage in [0, 100].
	Accuracy     float64
	WPM          float64
	RawWPM       float64
	CorrectWords int
	TypedWords   int
}

// Metrics derives speed and accuracy from the current state.
//
// Elapsed time is budget based: a running session reports the budget minus
// the whole seconds left, never below zero, and any other session reports
// the full budget.
// Each committed word is credited one extra correct character for its
// delimiter, even when the word itself is wrong.
func (s Session) Metrics() Metrics {
	budgetSeconds := s.budget.Seconds()
	elapsed := budgetSeconds
	if s.started && !s.finished {
		elapsed = max(0, budgetSeconds-float64(s.timeLeft))
	}

	var m Metrics
	m.ElapsedSeconds = elapsed
	m.TypedWords = len(s.typedWords)

	for i, typed := range s.typedWords {
		target := s.passage.Word(i)
		correct, total := compareRunes(typed, target)
		m.CorrectChars += correct + 1
		m.TotalChars += total + 1
		if typed == target {
			m.CorrectWords++
		}
	}

	correct, total := compareRunes(s.currentWord, s.TargetWord())
	m.CorrectChars += correct
	m.TotalChars += total
	m.IncorrectChars = m.TotalChars - m.CorrectChars

	if m.TotalChars > 0 {
		m.Accuracy = 100 * float64(m.CorrectChars) / float64(m.TotalChars)
	}
	if elapsed > 0 {
		minutes := elapsed / 60
		m.WPM = (float64(m.CorrectChars) / charsPerWord) / minutes
		m.RawWPM = (float64(m.TotalChars) / charsPerWord) / minutes
	}
	return m
}

// compareRunes counts positions of typed that match target, and the number of
// runes in typed.
func compareRunes(typed, target string) (correct, total int) {
	targetRunes := []rune(target)
	for i, r := range []rune(typed) {
		total++
		if i < len(targetRunes) && targetRunes[i] == r {
			correct++
		}
	}
	return correct, total
}
