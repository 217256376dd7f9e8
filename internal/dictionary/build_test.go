package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func slashed(s string) string { return "/" + s + "/" }

func TestBuild(t *testing.T) {
	full := Build(testutil.Lexicon(), slashed)
	require.Len(t, full, 8)

	assert.Equal(t, []string{"e3", "e8", "e7", "e4", "e1", "e6", "e5", "e2"}, hashes(Entries(full)))
	for i, e := range full {
		assert.Equal(t, i+1, e.Index)
		assert.Equal(t, slashed(e.Sol), e.IPA)
	}

	kan1, kan2 := full[0], full[3]
	assert.Equal(t, 1, kan1.Homograph)
	assert.Equal(t, 2, kan2.Homograph)
	assert.Equal(t, 2, kan1.Homographs)
	assert.Equal(t, "/w/kan/1", kan1.Link)
	assert.Equal(t, "/w/kan/2", kan2.Link)

	lum := full[4]
	assert.Equal(t, 1, lum.Homograph)
	assert.Equal(t, "/w/lum", lum.Link)
	require.NotNil(t, lum.Part)
	assert.Equal(t, lang.Verb, *lum.Part)

	assert.Equal(t, "/w/mam%C3%A0", full[1].Link)

	ta := full[7]
	assert.Nil(t, ta.Part)
	assert.Equal(t, "verb", ta.Meanings[0].Prefix)
	assert.Equal(t, "iterate", ta.Meanings[0].Eng)
}

func TestBuildNilIPA(t *testing.T) {
	full := Build(testutil.Lexicon(), nil)
	assert.Empty(t, full[0].IPA)
	assert.Empty(t, Build(nil, nil))
}

func TestBuildHomographNumbering(t *testing.T) {
	entries := []lang.Entry{
		testutil.Entry("c", "sol", "V", "b"),
		testutil.Entry("a", "sol", "N", "z"),
		testutil.Entry("b", "sol", "V", "a"),
	}

	full := Build(entries, nil)
	assert.Equal(t, []string{"a", "b", "c"}, hashes(Entries(full)))
	for i, e := range full {
		assert.Equal(t, i+1, e.Homograph)
		assert.Equal(t, 3, e.Homographs)
	}
	assert.Equal(t, "/w/sol/3", full[2].Link)
}

func TestResolve(t *testing.T) {
	full := Build(testutil.Lexicon(), nil)

	e, ok := Resolve(full, "kan", 2)
	require.True(t, ok)
	assert.Equal(t, "e4", e.Hash)

	e, ok = Resolve(full, "lum", 0)
	require.True(t, ok)
	assert.Equal(t, "e1", e.Hash)

	_, ok = Resolve(full, "kan", 0)
	assert.False(t, ok, "homographs need a number")
	_, ok = Resolve(full, "kan", 3)
	assert.False(t, ok)
	_, ok = Resolve(full, "nope", 0)
	assert.False(t, ok)
}

func TestLink(t *testing.T) {
	assert.Equal(t, "/w/-ta", Link("-ta", 1, 1))
	assert.Equal(t, "/w/a%20b/2", Link("a b", 2, 2))
}
