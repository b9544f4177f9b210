package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"wordfind/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Input            string
	InputFocused     bool
	SubmitEnabled    bool
	Region           search.Region
	Word             string
	Entry            EntryView
	ErrorMessage     string
	Spinner          string
	Recent           []string
	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n")

	if region := r.RenderRegion(state); region != "" {
		content.WriteString("\n")
		content.WriteString(region)
		content.WriteString("\n")
	}

	if len(state.Recent) > 0 {
		content.WriteString(r.styles.Status.Render("Recent: " + strings.Join(state.Recent, ", ")))
		content.WriteString("\n")
	}

	// Key help is pinned to the bottom when no popup is visible
	if !state.ShowHelp {
		footer := r.renderFooter(state)
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// RenderRegion renders the single region the state makes visible. Idle
// renders nothing.
func (r *Renderer) RenderRegion(state ViewState) string {
	switch state.Region {
	case search.RegionLoading:
		return r.styles.StatusLoading.Render(fmt.Sprintf("%s Looking up %q...", state.Spinner, state.Word))
	case search.RegionResults:
		return r.RenderEntry(state.Entry)
	case search.RegionError:
		return r.styles.StatusError.Render(state.ErrorMessage)
	default:
		return ""
	}
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("wordfind")
	if state.StatusMessage == "" {
		return logo
	}

	status := r.styles.Dim.Render(state.StatusMessage)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(status)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + status
	}
	return logo + "  " + status
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	submit := r.styles.SubmitDisabled.Render("[ Search ]")
	if state.SubmitEnabled {
		submit = r.styles.SubmitEnabled.Render("[ Search ]")
	}
	return state.Input + "  " + submit
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.Keys == nil {
		return r.styles.Help.Render("Press ? for help")
	}
	return state.HelpModel.ShortHelpView(state.Keys.ShortHelp())
}

// renderHelpContent renders the help popup, scrolled by HelpScrollOffset
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("wordfind help"))
	b.WriteString("\n")
	if state.Keys != nil {
		full := state.HelpModel
		full.ShowAll = true
		b.WriteString(full.FullHelpView(state.Keys.FullHelp()))
	}
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Definitions from the Free Dictionary API"))

	lines := strings.Split(b.String(), "\n")
	visibleHeight := state.Height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if len(lines) <= visibleHeight {
		return b.String()
	}

	offset := state.HelpScrollOffset
	if maxOffset := len(lines) - visibleHeight; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visibleHeight
	lines = lines[offset:end]
	if offset > 0 {
		lines[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if end < len(strings.Split(b.String(), "\n")) {
		lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}
