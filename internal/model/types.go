// Package model defines shared data structures.
package model

import (
	"errors"
	"math"
)

const (
	// MaxWordLen is the longest word the loader produces. Longer runs are split.
	MaxWordLen = 16
	// MaxWords caps the number of words kept per list.
	MaxWords = math.MaxUint32
	// Alphabet lists the characters that make up words.
	Alphabet = "abcdefghijklmnopqrstuvwxyz234567"
)

// Bound is an inclusive length range.
type Bound struct {
	Min int
	Max int
}

// Contains reports whether n lies within the bound.
func (b Bound) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// ListSpec names a word list file and the length bound for its words.
type ListSpec struct {
	Path  string
	Bound Bound
}

// WordList holds the filtered words loaded from one file.
type WordList struct {
	Path  string
	Bound Bound
	Words []string
}

// Count returns the number of loaded words.
func (w WordList) Count() int {
	return len(w.Words)
}

// Lists groups the word lists combined by the generator, in output order.
type Lists struct {
	Primary   WordList
	Secondary *WordList
	Tertiary  *WordList
}

// Len returns how many lists are present.
func (l Lists) Len() int {
	n := 1
	if l.Secondary != nil {
		n++
	}
	if l.Tertiary != nil {
		n++
	}
	return n
}

// All returns the present lists in order.
func (l Lists) All() []WordList {
	out := []WordList{l.Primary}
	if l.Secondary != nil {
		out = append(out, *l.Secondary)
	}
	if l.Tertiary != nil {
		out = append(out, *l.Tertiary)
	}
	return out
}

// Validate checks that a tertiary list is only given together with a secondary one.
func (l Lists) Validate() error {
	if l.Tertiary != nil && l.Secondary == nil {
		return errors.New("third word list requires a second word list")
	}
	return nil
}

// OutputSpec bounds the combined output length and counts emitted combinations.
type OutputSpec struct {
	Bound Bound
	Count int64
}
