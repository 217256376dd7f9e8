package dictionary

import (
	"fmt"
	"net/url"

	"github.com/roach88/soldict/internal/lang"
)

// FullEntry is an entry with its derived display data.
type FullEntry struct {
	lang.Entry

	Part       *lang.Part `json:"part,omitempty"`
	IPA        string     `json:"ipa"`
	Index      int        `json:"index"`      // 1-based position in sorted order
	Homograph  int        `json:"homograph"`  // 1-based among entries sharing Sol
	Homographs int        `json:"homographs"` // number of entries sharing Sol
	Link       string     `json:"link"`
}

// Build normalizes meanings, sorts entries, and assigns index, homograph
// number, link, part of speech and transcription. ipa renders a surface
// form; it may be nil.
func Build(entries []lang.Entry, ipa func(string) string) []FullEntry {
	normalized := make([]lang.Entry, len(entries))
	for i, e := range entries {
		normalized[i] = NormalizeMeanings(e)
	}
	sorted := Sort(normalized)

	counts := make(map[string]int)
	for _, e := range sorted {
		counts[e.Sol]++
	}

	seen := make(map[string]int)
	out := make([]FullEntry, len(sorted))
	for i, e := range sorted {
		seen[e.Sol]++
		fe := FullEntry{
			Entry:      e,
			Index:      i + 1,
			Homograph:  seen[e.Sol],
			Homographs: counts[e.Sol],
			Link:       Link(e.Sol, seen[e.Sol], counts[e.Sol]),
		}
		if p, ok := PartOfExtra(e.Extra); ok {
			fe.Part = &p
		}
		if ipa != nil {
			fe.IPA = ipa(e.Sol)
		}
		out[i] = fe
	}
	return out
}

// Link returns the path of the nth of count entries spelled sol. The
// number is omitted when the spelling is unique.
func Link(sol string, n, count int) string {
	if count <= 1 {
		return "/w/" + url.PathEscape(sol)
	}
	return fmt.Sprintf("/w/%s/%d", url.PathEscape(sol), n)
}

// Resolve finds the entry a link points at: the nth homograph of sol, or
// the only entry spelled sol when n is 0.
func Resolve(entries []FullEntry, sol string, n int) (FullEntry, bool) {
	for _, e := range entries {
		if e.Sol != sol {
			continue
		}
		if n == 0 && e.Homographs == 1 {
			return e, true
		}
		if e.Homograph == n {
			return e, true
		}
	}
	return FullEntry{}, false
}

// Entries returns the raw entries of full, in order.
func Entries(full []FullEntry) []lang.Entry {
	out := make([]lang.Entry, len(full))
	for i, e := range full {
		out[i] = e.Entry
	}
	return out
}
