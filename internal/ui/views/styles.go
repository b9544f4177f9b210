package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	InfoBox        lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	SubmitEnabled  lipgloss.Style
	SubmitDisabled lipgloss.Style
	Headword       lipgloss.Style
	Phonetic       lipgloss.Style
	PartOfSpeech   lipgloss.Style
	Definition     lipgloss.Style
	Example        lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	Recent         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SubmitEnabled:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		SubmitDisabled: lipgloss.NewStyle().Faint(true),
		Headword:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Phonetic:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Italic(true), // cyan
		PartOfSpeech:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Definition:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Example:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Recent:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
