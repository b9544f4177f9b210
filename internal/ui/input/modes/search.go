package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"wordfind/internal/ui/input/types"
)

// SearchPrompt precedes the word being typed
const SearchPrompt = "Search: "

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", SearchPrompt, ti),
	}
}
