// Package model defines shared data structures.
package model

import (
	"errors"
	"time"
)

// Config defines practice settings.
type Config struct {
	Words        int
	Duration     time.Duration
	Seed         int64
	RandomSeed   bool
	WordListPath string
	Smooth       int
}

// Validate checks the settings a session can be started with.
func (c Config) Validate() error {
	if c.Words <= 0 {
		return errors.New("--words must be > 0")
	}
	if c.Duration <= 0 {
		return errors.New("--duration must be > 0")
	}
	if c.Duration%time.Second != 0 {
		return errors.New("--duration must be a whole number of seconds")
	}
	if c.Smooth < 0 {
		return errors.New("--smooth must be >= 0")
	}
	return nil
}
