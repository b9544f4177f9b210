package search

import "wordfind/internal/domain"

// User-facing messages. Every lookup failure collapses to MsgNotFound.
const (
	MsgEmptyInput = "Please enter a word to search."
	MsgNoResults  = "No results found."
	MsgNotFound   = "Word not found. Please try a different word."
)

// Phase is the active view state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseResults
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Region is a display region of the view; at most one is visible
type Region int

const (
	RegionNone Region = iota
	RegionLoading
	RegionResults
	RegionError
)

func (r Region) String() string {
	switch r {
	case RegionLoading:
		return "loading"
	case RegionResults:
		return "results"
	case RegionError:
		return "error"
	default:
		return "none"
	}
}

// ViewState is the single source of truth for what the view shows.
// Entry is only meaningful in PhaseResults, Message only in PhaseError.
type ViewState struct {
	Phase   Phase
	Word    string
	Entry   domain.Entry
	Message string
}

// Idle is the initial state
func Idle() ViewState {
	return ViewState{Phase: PhaseIdle}
}

// Loading is shown while the lookup for word is in flight
func Loading(word string) ViewState {
	return ViewState{Phase: PhaseLoading, Word: word}
}

// Results shows entry
func Results(word string, entry domain.Entry) ViewState {
	return ViewState{Phase: PhaseResults, Word: word, Entry: entry}
}

// Failure shows message in the error region
func Failure(word, message string) ViewState {
	return ViewState{Phase: PhaseError, Word: word, Message: message}
}

// Region projects the state onto the one region it owns
func (s ViewState) Region() Region {
	switch s.Phase {
	case PhaseLoading:
		return RegionLoading
	case PhaseResults:
		return RegionResults
	case PhaseError:
		return RegionError
	default:
		return RegionNone
	}
}

// Visible reports whether region r is shown in this state
func (s ViewState) Visible(r Region) bool {
	return r != RegionNone && s.Region() == r
}
