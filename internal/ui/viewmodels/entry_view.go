package viewmodels

import (
	"wordfind/internal/domain"
	"wordfind/internal/ui/views"
)

// MaxDefinitionsPerMeaning caps how many definitions each meaning shows
const MaxDefinitionsPerMeaning = 3

const (
	unknownHeadword     = "Unknown"
	missingDefinition   = "No definition available"
	noDefinitionsNotice = "No definitions available."
)

// SelectPhonetic returns the first non-empty phonetic text, or "" if none has one
func SelectPhonetic(phonetics []domain.Phonetic) string {
	for _, p := range phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// BuildDefinitions groups definitions per meaning, keeping at most limit per
// group in source order. limit <= 0 keeps all of them. With no
// meanings the result carries only the placeholder notice.
func BuildDefinitions(meanings []domain.Meaning, limit int) ([]views.DefinitionGroup, string) {
	if len(meanings) == 0 {
		return nil, noDefinitionsNotice
	}

	groups := make([]views.DefinitionGroup, 0, len(meanings))
	for _, m := range meanings {
		defs := m.Definitions
		if limit > 0 && len(defs) > limit {
			defs = defs[:limit]
		}

		group := views.DefinitionGroup{
			PartOfSpeech: m.PartOfSpeech,
			Items:        make([]views.DefinitionItem, 0, len(defs)),
		}
		for _, d := range defs {
			text := d.Text
			if text == "" {
				text = missingDefinition
			}
			group.Items = append(group.Items, views.DefinitionItem{Text: text, Example: d.Example})
		}
		groups = append(groups, group)
	}

	return groups, ""
}

// NewEntryView projects entry onto what the results region shows
func NewEntryView(entry domain.Entry) views.EntryView {
	return buildEntryView(entry, MaxDefinitionsPerMeaning, false)
}

// FullEntryView is the uncapped listing, with parts of speech, used by the pager
func FullEntryView(entry domain.Entry) views.EntryView {
	return buildEntryView(entry, 0, true)
}

func buildEntryView(entry domain.Entry, limit int, withPartOfSpeech bool) views.EntryView {
	headword := entry.Word
	if headword == "" {
		headword = unknownHeadword
	}

	groups, placeholder := BuildDefinitions(entry.Meanings, limit)

	return views.EntryView{
		Headword:         headword,
		Phonetic:         SelectPhonetic(entry.Phonetics),
		Groups:           groups,
		Placeholder:      placeholder,
		ShowPartOfSpeech: withPartOfSpeech,
	}
}
