package dictionary

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/soldict/internal/lang"
)

// Section titles with structured content.
const (
	TitleTranslation = "translation"
	TitleUsage       = "usage"
	TitleEtymology   = "etymology"
	TitleInstead     = "instead"
	TitleCoordinate  = "coordinate"
)

// Interlinear is the content of a translation section.
type Interlinear struct {
	Sol    string `json:"sol"`
	SolSep string `json:"solSep"`
	EngSep string `json:"engSep"`
	Eng    string `json:"eng"`
}

// ParseInterlinear decodes a translation section's content.
func ParseInterlinear(content string) (Interlinear, error) {
	var il Interlinear
	if err := json.Unmarshal([]byte(content), &il); err != nil {
		return Interlinear{}, fmt.Errorf("parse translation: %w", err)
	}
	return il, nil
}

// Example is the translation sections of one meaning.
type Example struct {
	Entry    FullEntry      `json:"entry"`
	Nth      int            `json:"nth"` // 1-based meaning number
	Sections []lang.Section `json:"sections"`
}

// Examples collects every meaning that has translation sections, in entry
// then meaning order.
func Examples(entries []FullEntry) []Example {
	out := []Example{}
	for _, e := range entries {
		for mi, m := range e.Meanings {
			var sections []lang.Section
			for _, s := range m.Sections {
				if s.Title == TitleTranslation {
					sections = append(sections, s)
				}
			}
			if len(sections) == 0 {
				continue
			}
			out = append(out, Example{Entry: e, Nth: mi + 1, Sections: sections})
		}
	}
	return out
}
