package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/phonology"
)

// CompileSoundChange parses a CUE value into a sound-change configuration.
//
// Each change may be a [from, to, left, right] list (contexts optional or
// null), a {from, to, left?, right?} struct, or a string in rule notation
// ("k -> g / _ {V}"):
//
//	soundChange: {
//		vowels: "aeiouɛɔ"
//		resyllabify: true
//		clusters: ["pl", "kl"]
//		unromanize: pre: [["˧", "3"]]
//		changes: [
//			["k", "g", null, "{V}"],
//			{from: "n", to: "ŋ", right: "$"},
//			"{T} -> ∅",
//		]
//	}
func CompileSoundChange(v cue.Value) (*lang.SoundChangeConfig, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	cfg := &lang.SoundChangeConfig{Changes: []lang.Change{}}

	if vowelsVal := v.LookupPath(cue.ParsePath("vowels")); vowelsVal.Exists() {
		vowels, err := vowelsVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		cfg.Vowels = vowels
	}

	if resylVal := v.LookupPath(cue.ParsePath("resyllabify")); resylVal.Exists() {
		resyl, err := resylVal.Bool()
		if err != nil {
			return nil, &CompileError{Field: "resyllabify", Message: "must be a bool", Pos: resylVal.Pos()}
		}
		cfg.Resyllabify = resyl
	}

	if clustersVal := v.LookupPath(cue.ParsePath("clusters")); clustersVal.Exists() {
		var clusters []string
		if err := clustersVal.Decode(&clusters); err != nil {
			return nil, &CompileError{Field: "clusters", Message: "must be a list of strings", Pos: clustersVal.Pos()}
		}
		cfg.Clusters = clusters
	}

	unromVal := v.LookupPath(cue.ParsePath("unromanize"))
	var err error
	if cfg.Unromanize.Pre, err = parseSubstitutions(unromVal, "pre"); err != nil {
		return nil, err
	}
	if cfg.Unromanize.Post, err = parseSubstitutions(unromVal, "post"); err != nil {
		return nil, err
	}

	changesVal := v.LookupPath(cue.ParsePath("changes"))
	if !changesVal.Exists() {
		return cfg, nil
	}

	iter, err := changesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		c, err := parseChange(iter.Value(), fmt.Sprintf("changes[%d]", i))
		if err != nil {
			return nil, err
		}
		cfg.Changes = append(cfg.Changes, c)
	}

	return cfg, nil
}

func parseChange(v cue.Value, path string) (lang.Change, error) {
	switch v.IncompleteKind() {
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return lang.Change{}, formatCUEError(err)
		}
		c, err := phonology.ParseChange(s)
		if err != nil {
			return lang.Change{}, &CompileError{Field: path, Message: err.Error(), Pos: v.Pos()}
		}
		return c, nil

	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return lang.Change{}, formatCUEError(err)
		}
		var parts []*string
		for iter.Next() {
			p, err := optionalString(iter.Value())
			if err != nil {
				return lang.Change{}, err
			}
			parts = append(parts, p)
		}
		if len(parts) < 2 || len(parts) > 4 {
			return lang.Change{}, &CompileError{
				Field:   path,
				Message: fmt.Sprintf("expected 2 to 4 elements, got %d", len(parts)),
				Pos:     v.Pos(),
			}
		}
		if parts[0] == nil || parts[1] == nil {
			return lang.Change{}, &CompileError{Field: path, Message: "from and to must be strings", Pos: v.Pos()}
		}
		c := lang.Change{From: *parts[0], To: *parts[1]}
		if len(parts) > 2 {
			c.Left = parts[2]
		}
		if len(parts) > 3 {
			c.Right = parts[3]
		}
		return c, nil

	case cue.StructKind:
		var fields [4]*string
		for i, name := range []string{"from", "to", "left", "right"} {
			fv := v.LookupPath(cue.ParsePath(name))
			if !fv.Exists() {
				continue
			}
			p, err := optionalString(fv)
			if err != nil {
				return lang.Change{}, err
			}
			fields[i] = p
		}
		if fields[0] == nil || fields[1] == nil {
			return lang.Change{}, &CompileError{Field: path, Message: "from and to are required", Pos: v.Pos()}
		}
		return lang.Change{From: *fields[0], To: *fields[1], Left: fields[2], Right: fields[3]}, nil

	default:
		return lang.Change{}, &CompileError{
			Field:   path,
			Message: fmt.Sprintf("must be a string, list or struct, got %v", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}
}

// optionalString reads a string or null.
func optionalString(v cue.Value) (*string, error) {
	if v.IncompleteKind() == cue.NullKind {
		return nil, nil
	}
	s, err := v.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	return &s, nil
}
