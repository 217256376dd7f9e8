// Package phonology turns romanized words into transcriptions.
//
// The package has three layers, leaf-first:
//
//   - Patterns compiles a lang.Inventory into ordered matchers, and expands
//     the {V}, {C} and {T} class placeholders used by sound-change rules.
//   - Parser segments a romanized word into lang.Syllable values.
//   - Engine applies an ordered rule list to a phonemic transcription and
//     records the minimal list of intermediate forms.
//
// Transcriber composes Parser and Engine into the full pipeline, and Cache
// keys compiled transcribers by configuration content hash.
//
// # Determinism
//
// Parser and Engine hold only compiled, immutable state. Given the same input
// and configuration every call returns byte-identical output; a freshly built
// Engine behaves exactly like one that has already served requests.
//
// # Errors
//
// Malformed configuration is rejected at construction with a *ConfigError.
// Text that cannot be resolved against the inventory is never an error: it
// is carried as lang.InvalidPhoneme or lang.InvalidTone and renders as "×".
//
// Matching uses github.com/dlclark/regexp2 because syllable boundaries and
// rule contexts need lookahead and lookbehind, which RE2 does not provide.
package phonology
