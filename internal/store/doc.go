// Package store keeps a SQLite snapshot of the raw lexicon.
//
// Only what the dictionary's data source delivers is stored: entries,
// their meanings, and the free-form sections attached to either. IPA,
// rhymes, homograph numbers and links are recomputed on read by the
// dictionary package.
//
// # Ordering
//
// Every query orders deterministically: entries by import sequence then
// hash (COLLATE BINARY), meanings and sections by position. Reading the
// same snapshot twice yields identical slices.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Meanings cascade with their entry
package store
