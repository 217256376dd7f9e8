package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ConfigCUE is Inventory written as a CUE configuration, plus three sound
// changes: spirantization of kʰ before a vowel, ŋ → n word-finally, and the
// falling tone levelling to ˥˧.
const ConfigCUE = `
syllable: {
	unromanize: [["ng", "ŋ"]]
	consonant: [
		["z", "ts"], ["c", "tsʰ"], ["b", "p"], ["p", "pʰ"], ["d", "t"], ["t", "tʰ"],
		["g", "k"], ["k", "kʰ"], ["m", "m"], ["n", "n"], ["ŋ", "ŋ"], ["f", "f"],
		["s", "s"], ["x", "sʰ"], ["h", "h"], ["l", "l"], ["j", "j"], ["w", "w"], ["r", "ɾ"],
	]
	initial: [["dj", "c"], ["tj", "cʰ"], ["nj", "ɲ"], ["sj", "ç"]]
	vowel: [["a", "a"], ["e", "e"], ["i", "i"], ["o", "o"], ["u", "u"], ["ee", "ɛ"], ["oo", "ɔ"]]
	final: [["p", "p"], ["t", "t"], ["k", "k"], ["m", "m"], ["n", "n"], ["ŋ", "ŋ"], ["s", "s"]]
	tones: [
		["\u0300", "F", "˥˩"],
		["\u0301", "R", "˩˥"],
		["\u0304", "H", "˥"],
		["\u030c", "L", "˩"],
		["", "M", "˧"],
	]
}

soundChange: {
	vowels: "aeiouɛɔ"
	changes: [
		"kʰ -> x / _ {V}",
		{from: "ŋ", to: "n", right: "{T}$"},
		["˥˩", "˥˧"],
	]
}
`

// WriteConfig writes ConfigCUE to dir/sol.cue and returns the file path.
func WriteConfig(t testing.TB, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sol.cue")
	if err := os.WriteFile(path, []byte(ConfigCUE), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
