// Package generator builds deterministic typing passages.
package generator

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280

	maxRandomSeed = 1000000
)

// ErrEmptyDictionary is returned when a generator is built from an empty word list.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// Passage is the ordered list of target words for a session.
type Passage []string

// String joins the passage words with single spaces.
func (p Passage) String() string {
	return strings.Join(p, " ")
}

// Word returns the word at index i, or "" when i is out of range.
func (p Passage) Word(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	return p[i]
}

// Rand is the linear-congruential sequence used to pick passage words.
type Rand struct {
	state int64
}

// NewRand returns a sequence seeded with seed.
func NewRand(seed int64) *Rand {
	// (s*a+c) mod m only depends on s mod m.
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &Rand{state: state}
}

// Float64 advances the sequence and returns a value in [0,1).
func (r *Rand) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// Generator produces passages from a fixed dictionary.
type Generator struct {
	words []string
}

// New returns a Generator over a copy of words.
func New(words []string) (*Generator, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Generator{words: append([]string(nil), words...)}, nil
}

// Default returns a Generator over the built-in dictionary.
func Default() *Generator {
	return &Generator{words: dictionary}
}

// Size returns the number of dictionary entries.
func (g *Generator) Size() int {
	return len(g.words)
}

// Generate picks count words using the sequence seeded with seed.
// Equal (seed, count) pairs always produce the same passage.
func (g *Generator) Generate(seed int64, count int) Passage {
	if count <= 0 {
		return Passage{}
	}
	rnd := NewRand(seed)
	result := make(Passage, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.words[index(rnd.Float64(), len(g.words))])
	}
	return result
}

// Generate picks count words from the built-in dictionary.
func Generate(seed int64, count int) Passage {
	return Default().Generate(seed, count)
}

// RandomSeed returns a fresh seed for a new session.
func RandomSeed() int64 {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return rnd.Int63n(maxRandomSeed)
}

func index(v float64, n int) int {
	idx := int(v * float64(n))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
