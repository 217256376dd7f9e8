package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestCompare(t *testing.T) {
	plain := testutil.Entry("a", "kan", "N", "house")
	tagged := plain
	tagged.Tag = "obsolete"

	tests := []struct {
		name string
		a, b lang.Entry
		want int
	}{
		{"untagged first", plain, tagged, -1},
		{"extra breaks ties", testutil.Entry("a", "x", "N", "z"), testutil.Entry("b", "x", "V", "a"), -1},
		{"glosses compared in order", testutil.Entry("a", "x", "N", "a", "b"), testutil.Entry("b", "x", "N", "a", "c"), -1},
		{"prefix list first", testutil.Entry("a", "x", "N", "a"), testutil.Entry("b", "x", "N", "a", "b"), -1},
		{"no glosses first", testutil.Entry("a", "x", "N"), testutil.Entry("b", "x", "N", "a"), -1},
		{"sol breaks remaining ties", testutil.Entry("b", "x", "N", "a"), testutil.Entry("a", "y", "N", "a"), -1},
		{"hash breaks homograph ties", testutil.Entry("a", "x", "N", "a"), testutil.Entry("b", "x", "N", "a"), -1},
		{"same entry", testutil.Entry("a", "x", "N", "a"), testutil.Entry("a", "x", "N", "a"), 0},
		{"tag before extra", tagged, testutil.Entry("b", "x", "V", "a"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(Compare(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(Compare(tt.b, tt.a)))
		})
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	entries := testutil.Lexicon()
	tagged := testutil.Entry("t", "kan", "N", "house")
	tagged.Tag = "archaic"
	entries = append(entries, tagged)

	for _, a := range entries {
		assert.Equal(t, 0, Compare(a, a))
		for _, b := range entries {
			assert.Equal(t, sign(Compare(a, b)), -sign(Compare(b, a)), "%s/%s", a.Hash, b.Hash)
			for _, c := range entries {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "%s/%s/%s", a.Hash, b.Hash, c.Hash)
				}
			}
		}
	}
}

func TestSortIndependentOfInputOrder(t *testing.T) {
	entries := []lang.Entry{
		testutil.Entry("b", "y", "N", "same"),
		testutil.Entry("d", "x", "N", "same"),
		testutil.Entry("a", "x", "N", "same"),
		testutil.Entry("c", "z", "N", "earlier"),
	}

	sorted := Sort(entries)
	assert.Equal(t, []string{"c", "a", "d", "b"}, hashes(sorted))
	assert.Equal(t, "b", entries[0].Hash, "input is not reordered")

	reversed := make([]lang.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	assert.Equal(t, sorted, Sort(reversed))
	assert.Equal(t, sorted, Sort(sorted))
}

func hashes(entries []lang.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Hash
	}
	return out
}
