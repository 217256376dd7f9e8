// Package morph analyzes surface forms as bare lexicon entries or as a stem
// plus one suffix.
//
// Decomposition is one layer deep and suffix-only. Entries spelled with a
// trailing hyphen are recognized as prefixes but never stripped.
package morph
