package input

import (
	"wordfind/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// ShowingHelp reports whether the help popup is open
func (c *ModelContext) ShowingHelp() bool {
	return c.State.ShowHelp
}

// HasResults reports whether an entry is on screen
func (c *ModelContext) HasResults() bool {
	return c.State.HasResults()
}

// InputValue returns the search field's current text
func (c *ModelContext) InputValue() string {
	return c.State.InputValue
}
