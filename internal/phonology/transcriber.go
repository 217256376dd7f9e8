package phonology

import (
	"strings"

	"github.com/roach88/soldict/internal/lang"
)

// Transcriber runs the full pipeline: romanization, syllables, phonemic
// transcription, sound changes.
type Transcriber struct {
	parser *Parser
	engine *Engine
	hash   string
}

// NewTranscriber compiles inv and cfg. Placeholders come from inv, with
// cfg.Vowels overriding the vowel class when set.
func NewTranscriber(inv lang.Inventory, cfg lang.SoundChangeConfig) (*Transcriber, error) {
	hash, err := lang.ConfigHash(inv, cfg)
	if err != nil {
		return nil, err
	}

	parser, err := NewParser(inv)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(cfg, Placeholders(inv, cfg.Vowels))
	if err != nil {
		return nil, err
	}
	if cfg.Resyllabify {
		engine.addClusters(phonetics(inv.Onsets()))
	}

	return &Transcriber{parser: parser, engine: engine, hash: hash}, nil
}

// Parser returns the syllable parser.
func (t *Transcriber) Parser() *Parser { return t.parser }

// Engine returns the sound-change engine.
func (t *Transcriber) Engine() *Engine { return t.engine }

// Hash returns the content hash of the configuration.
func (t *Transcriber) Hash() string { return t.hash }

// WithChanges compiles a transcriber sharing t's inventory but using changes
// as its rule list. t is unaffected.
func (t *Transcriber) WithChanges(changes []lang.Change) (*Transcriber, error) {
	return NewTranscriber(t.parser.Inventory(), t.engine.Config().WithChanges(changes))
}

// Derivation is the full derivation of one romanized word.
type Derivation struct {
	Word     string   `json:"word"`
	Phonemic string   `json:"phonemic"`
	Phonetic string   `json:"phonetic"`
	Steps    []string `json:"steps"`
}

// Derive syllabifies word and runs the sound changes over the result.
func (t *Transcriber) Derive(word string) Derivation {
	phonemic := t.parser.Phonemic(word)
	w := t.engine.Word(phonemic)
	return Derivation{Word: word, Phonemic: phonemic, Phonetic: w.Output, Steps: w.Steps}
}

// Phonemic renders a romanized sentence before sound changes, as "/…/".
func (t *Transcriber) Phonemic(sentence string) string {
	return t.parser.IPA(sentence)
}

// DeriveSentence derives each word of a romanized sentence independently.
func (t *Transcriber) DeriveSentence(sentence string) SentenceDerivation {
	words := Words(sentence)
	out := SentenceDerivation{Words: make([]WordDerivation, 0, len(words))}
	for _, w := range words {
		if w == Break {
			out.Words = append(out.Words, breakDerivation())
			continue
		}
		out.Words = append(out.Words, t.engine.Word(t.parser.Phonemic(w)))
	}
	return out
}

// Phonetic renders a romanized sentence after sound changes, as "/…/".
func (t *Transcriber) Phonetic(sentence string) string {
	return t.DeriveSentence(sentence).Output()
}

// Steps joins the derivation steps of a word with arrows for display.
func Steps(steps []string) string {
	return strings.Join(steps, " → ")
}
