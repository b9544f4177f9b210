package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"wordfind/internal/search"
	"wordfind/internal/ui/state"
	"wordfind/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	width  int
	height int
	help   help.Model
	keys   help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{
		state: appState,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model and the key map it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// BuildViewState creates a ViewState for rendering. input is the rendered
// search field and spinner the current spinner frame.
func (vm *ViewModel) BuildViewState(input, spinner string, focused bool) views.ViewState {
	current := vm.state.View

	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Input:            input,
		InputFocused:     focused,
		SubmitEnabled:    vm.state.SubmitEnabled,
		Region:           current.Region(),
		Word:             current.Word,
		Spinner:          spinner,
		Recent:           vm.state.Recent,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpModel:        vm.help,
		Keys:             vm.keys,
	}

	switch current.Phase {
	case search.PhaseResults:
		vs.Entry = NewEntryView(current.Entry)
	case search.PhaseError:
		vs.ErrorMessage = current.Message
	}

	return vs
}
