package lookup

import "wordfind/internal/domain"

// apiEntry mirrors one element of the service's response array
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

func (e apiEntry) toDomain() domain.Entry {
	entry := domain.Entry{
		Word:      e.Word,
		Phonetics: make([]domain.Phonetic, 0, len(e.Phonetics)),
		Meanings:  make([]domain.Meaning, 0, len(e.Meanings)),
	}
	for _, ph := range e.Phonetics {
		entry.Phonetics = append(entry.Phonetics, domain.Phonetic{Text: ph.Text, Audio: ph.Audio})
	}
	for _, m := range e.Meanings {
		meaning := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, domain.Definition{Text: d.Definition, Example: d.Example})
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}
	return entry
}
