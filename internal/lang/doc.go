// Package lang provides the data model shared by the phonology, rhyme,
// morphology and dictionary packages.
//
// This package contains type definitions and content hashing only. All other
// internal packages import lang; lang imports nothing internal.
//
// Key design constraints:
//   - Configurations (Inventory, SoundChangeConfig) are values, immutable once
//     loaded. Caches key on ConfigHash, never on pointer identity.
//   - The invalid marker is a distinguished value that compares unequal to
//     every inventory entry and renders as "×".
//   - All JSON tags use snake_case.
package lang
