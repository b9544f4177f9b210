package domain

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when a search is submitted with blank input
var ErrEmptyInput = errors.New("empty search input")

// Entry represents one dictionary record for a headword
type Entry struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic represents a single pronunciation record
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups definitions under one grammatical category
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense with an optional usage example
type Definition struct {
	Text    string `json:"definition"`
	Example string `json:"example,omitempty"`
}

// LookupResult is the ordered list of entries returned by the lookup service
type LookupResult []Entry

// First returns the first entry, the only one that gets rendered
func (r LookupResult) First() (Entry, bool) {
	if len(r) == 0 {
		return Entry{}, false
	}
	return r[0], true
}

// Query is a trimmed, non-empty search term
type Query string

// NewQuery trims raw and rejects it if nothing is left
func NewQuery(raw string) (Query, error) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", ErrEmptyInput
	}
	return Query(word), nil
}

// String returns the word
func (q Query) String() string {
	return string(q)
}
