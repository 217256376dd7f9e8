package compiler

import (
	"cuelang.org/go/cue"

	"github.com/roach88/soldict/internal/lang"
)

// Config is a compiled phonology configuration.
type Config struct {
	Inventory   lang.Inventory
	SoundChange lang.SoundChangeConfig
}

// Compile reads the top-level syllable and soundChange structs. The
// syllable struct is required; a missing soundChange means no rules.
func Compile(v cue.Value) (*Config, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	sylVal := v.LookupPath(cue.ParsePath(SectionSyllable))
	if !sylVal.Exists() {
		return nil, &CompileError{
			Field:   SectionSyllable,
			Message: "syllable is required",
			Pos:     v.Pos(),
		}
	}
	inv, err := CompileInventory(sylVal)
	if err != nil {
		return nil, inSection(SectionSyllable, err)
	}

	out := &Config{Inventory: *inv, SoundChange: lang.SoundChangeConfig{Changes: []lang.Change{}}}

	if scVal := v.LookupPath(cue.ParsePath(SectionSoundChange)); scVal.Exists() {
		sc, err := CompileSoundChange(scVal)
		if err != nil {
			return nil, inSection(SectionSoundChange, err)
		}
		out.SoundChange = *sc
	}

	return out, nil
}

// Hash returns the content hash of the compiled configuration.
func (c *Config) Hash() (string, error) {
	return lang.ConfigHash(c.Inventory, c.SoundChange)
}
