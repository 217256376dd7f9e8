package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/soldict/internal/lang"
)

// CompileInventory parses a CUE value into a phoneme inventory.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The value is the syllable struct itself. Phonemes are written either as
// [roman, phonetic] pairs or as {roman, phonetic} structs; tones as
// [diacritic, letter, phonetic] triples or {diacritic, letter, phonetic}:
//
//	syllable: {
//		unromanize: [["ng", "ŋ"]]
//		initial: [["dj", "c"]]
//		consonant: [["k", "kʰ"], ["n", "n"]]
//		vowel: [["a", "a"], ["ee", "ɛ"]]
//		final: [["n", "n"]]
//		tones: [["\u0300", "F", "˥˩"], ["", "M", "˧"]]
//	}
//
// Shape problems are reported as *CompileError. Semantic checks (empty
// classes, duplicates) belong to the pattern compiler.
func CompileInventory(v cue.Value) (*lang.Inventory, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	inv := &lang.Inventory{}
	var err error

	if inv.Unromanize, err = parseSubstitutions(v, "unromanize"); err != nil {
		return nil, err
	}

	classes := []struct {
		name string
		dst  *[]lang.PhonemeEntry
	}{
		{"consonant", &inv.Consonant},
		{"initial", &inv.Initial},
		{"vowel", &inv.Vowel},
		{"final", &inv.Final},
	}
	for _, c := range classes {
		if *c.dst, err = parsePhonemes(v, c.name); err != nil {
			return nil, err
		}
	}

	// Vowels are required; the rest may be empty
	if len(inv.Vowel) == 0 {
		return nil, &CompileError{
			Field:   "vowel",
			Message: "at least one vowel is required",
			Pos:     v.Pos(),
		}
	}

	if inv.Tones, err = parseTones(v); err != nil {
		return nil, err
	}
	if len(inv.Tones) == 0 {
		return nil, &CompileError{
			Field:   "tones",
			Message: "at least one tone is required",
			Pos:     v.Pos(),
		}
	}

	return inv, nil
}

func parsePhonemes(v cue.Value, field string) ([]lang.PhonemeEntry, error) {
	entries := []lang.PhonemeEntry{}
	listVal := v.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return entries, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	for i := 0; iter.Next(); i++ {
		parts, err := tuple(iter.Value(), fmt.Sprintf("%s[%d]", field, i), "roman", "phonetic")
		if err != nil {
			return nil, err
		}
		entries = append(entries, lang.PhonemeEntry{Roman: parts[0], Phonetic: parts[1]})
	}
	return entries, nil
}

func parseTones(v cue.Value) ([]lang.ToneEntry, error) {
	tones := []lang.ToneEntry{}
	listVal := v.LookupPath(cue.ParsePath("tones"))
	if !listVal.Exists() {
		return tones, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	for i := 0; iter.Next(); i++ {
		parts, err := tuple(iter.Value(), fmt.Sprintf("tones[%d]", i), "diacritic", "letter", "phonetic")
		if err != nil {
			return nil, err
		}
		tones = append(tones, lang.ToneEntry{Diacritic: parts[0], Letter: parts[1], Phonetic: parts[2]})
	}
	return tones, nil
}

func parseSubstitutions(v cue.Value, field string) ([]lang.Substitution, error) {
	subs := []lang.Substitution{}
	listVal := v.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return subs, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	for i := 0; iter.Next(); i++ {
		parts, err := tuple(iter.Value(), fmt.Sprintf("%s[%d]", field, i), "from", "to")
		if err != nil {
			return nil, err
		}
		subs = append(subs, lang.Substitution{From: parts[0], To: parts[1]})
	}
	return subs, nil
}

// tuple reads a fixed-arity string record written either as a list or as a
// struct with the given field names. Missing struct fields read as "".
func tuple(v cue.Value, path string, names ...string) ([]string, error) {
	out := make([]string, len(names))

	switch v.IncompleteKind() {
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		n := 0
		for iter.Next() {
			if n >= len(names) {
				return nil, &CompileError{
					Field:   path,
					Message: fmt.Sprintf("expected %d elements", len(names)),
					Pos:     v.Pos(),
				}
			}
			s, err := iter.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			out[n] = s
			n++
		}
		if n != len(names) {
			return nil, &CompileError{
				Field:   path,
				Message: fmt.Sprintf("expected %d elements, got %d", len(names), n),
				Pos:     v.Pos(),
			}
		}

	case cue.StructKind:
		for i, name := range names {
			fv := v.LookupPath(cue.ParsePath(name))
			if !fv.Exists() {
				continue
			}
			s, err := fv.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			out[i] = s
		}

	default:
		return nil, &CompileError{
			Field:   path,
			Message: fmt.Sprintf("must be a list or struct, got %v", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}

	return out, nil
}
