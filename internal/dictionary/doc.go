// Package dictionary orders a lexicon and derives per-entry display data:
// 1-based indices, homograph numbers, links and transcriptions.
package dictionary
