// Package rhyme projects syllables onto rhyme signatures and tallies them.
//
// A Rhyme is the (initial, vowel, tone, final) phonetic signature of a
// syllable. Absent initials and finals are the first-class value Null, which
// matches and counts like any other value.
package rhyme
