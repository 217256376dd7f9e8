package dictionary

import (
	"sort"
	"strings"

	"github.com/roach88/soldict/internal/lang"
)

// Compare orders entries for display. Entries without a status tag come
// first; ties fall to the extra field, then to the gloss lists compared
// position by position, a list that is a prefix of the other first.
//
// Remaining ties fall to the surface form and then the content hash, so the
// order does not depend on the order the store returns rows in.
func Compare(a, b lang.Entry) int {
	if at, bt := a.Tag != "", b.Tag != ""; at != bt {
		if at {
			return 1
		}
		return -1
	}

	if c := strings.Compare(a.Extra, b.Extra); c != 0 {
		return c
	}

	ag, bg := a.Glosses(), b.Glosses()
	for i := 0; i < len(ag) && i < len(bg); i++ {
		if c := strings.Compare(ag[i], bg[i]); c != 0 {
			return c
		}
	}
	if c := len(ag) - len(bg); c != 0 {
		return c
	}

	if c := strings.Compare(a.Sol, b.Sol); c != 0 {
		return c
	}
	return strings.Compare(a.Hash, b.Hash)
}

// Sort returns a sorted copy of entries.
func Sort(entries []lang.Entry) []lang.Entry {
	out := append([]lang.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}
