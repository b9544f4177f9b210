package ui

import (
	"time"

	"wordfind/internal/domain"
	"wordfind/internal/eventbus"
	"wordfind/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// submitMsg asks the model to search for a word, as if typed and submitted
type submitMsg struct {
	word string
}

// lookupDoneMsg carries the outcome of one lookup back to the event loop
type lookupDoneMsg struct {
	req    search.Request
	result domain.LookupResult
	err    error
}

// placeholderTickMsg rotates the sample word in the empty search field
type placeholderTickMsg time.Time

// pagerMsg contains the result of showing the full entry in the pager
type pagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
