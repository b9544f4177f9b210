package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"wordfind/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// The help popup swallows everything but its own keys
	if ctx.ShowingHelp() {
		switch msg.String() {
		case "?", "esc", "q":
			return []types.Action{types.ToggleHelpAction{}}, true
		case "j", "down":
			return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
		case "k", "up":
			return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "enter":
		// Resubmit whatever the input holds
		return []types.Action{types.SubmitTextAction{Text: ctx.InputValue(), Mode: types.ModeNormal}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "p":
		if ctx.HasResults() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, false

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
