package views

import (
	"fmt"
	"strings"
)

// EntryView is what the results region shows for one dictionary entry
type EntryView struct {
	Headword         string
	Phonetic         string
	Groups           []DefinitionGroup
	Placeholder      string
	ShowPartOfSpeech bool
}

// DefinitionGroup holds the definitions shown for one meaning
type DefinitionGroup struct {
	PartOfSpeech string
	Items        []DefinitionItem
}

// DefinitionItem is a single definition line and its optional example
type DefinitionItem struct {
	Text    string
	Example string
}

// RenderEntry renders the headword, phonetic line and definition groups
func (r *Renderer) RenderEntry(entry EntryView) string {
	var b strings.Builder

	b.WriteString(r.styles.Headword.Render(entry.Headword))
	b.WriteString("\n")
	if entry.Phonetic != "" {
		b.WriteString(r.styles.Phonetic.Render(entry.Phonetic))
		b.WriteString("\n")
	}

	if entry.Placeholder != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(entry.Placeholder))
		return b.String()
	}

	for _, group := range entry.Groups {
		b.WriteString("\n")
		if entry.ShowPartOfSpeech && group.PartOfSpeech != "" {
			b.WriteString(r.styles.PartOfSpeech.Render(group.PartOfSpeech))
			b.WriteString("\n")
		}
		for i, item := range group.Items {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, r.styles.Definition.Render(item.Text)))
			if item.Example != "" {
				b.WriteString(fmt.Sprintf("     %s\n", r.styles.Example.Render(fmt.Sprintf("%q", item.Example))))
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
