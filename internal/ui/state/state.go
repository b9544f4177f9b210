package state

import (
	"wordfind/internal/search"
)

// AppState contains all the application state
type AppState struct {
	// Search state, as last rendered by the controller
	View search.ViewState

	// Input state
	InputValue    string
	SubmitEnabled bool

	// Placeholder rotation
	SampleWords      []string
	PlaceholderIndex int

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string // status bar message
	InPager          bool
	Recent           []string // most recent first
}

// NewAppState creates a new application state
func NewAppState(sampleWords []string) *AppState {
	return &AppState{
		View:        search.Idle(),
		SampleWords: sampleWords,
	}
}

// SetInput records the current input value and the submit affordance it implies
func (s *AppState) SetInput(value string, valid bool) {
	s.InputValue = value
	s.SubmitEnabled = valid
}

// Placeholder returns the current sample-word prompt, or "" without sample words
func (s *AppState) Placeholder() string {
	if len(s.SampleWords) == 0 {
		return ""
	}
	return `Try searching for "` + s.SampleWords[s.PlaceholderIndex%len(s.SampleWords)] + `"...`
}

// AdvancePlaceholder moves to the next sample word. It reports false and
// leaves the index alone while the input holds text.
func (s *AppState) AdvancePlaceholder() bool {
	if s.InputValue != "" || len(s.SampleWords) == 0 {
		return false
	}
	s.PlaceholderIndex = (s.PlaceholderIndex + 1) % len(s.SampleWords)
	return true
}

// ToggleHelp shows or hides the help popup
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ScrollHelp moves the help popup by delta lines, never above the top
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}

// HasResults reports whether an entry is currently shown
func (s *AppState) HasResults() bool {
	return s.View.Phase == search.PhaseResults
}
