package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/rhyme"
)

func TestStatsJSON(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run("--format", "json", "stats")
	require.NoError(t, err)

	var result StatsResult
	decodeData(t, out, &result)
	assert.Equal(t, 8, result.Entries)
	assert.Equal(t, []rhyme.Count{
		{Value: "N", N: 3},
		{Value: "V", N: 2},
		{Value: "adj.", N: 1},
		{Value: "affix", N: 2},
	}, result.Parts)
	assert.Contains(t, result.Phonemes.Initial, rhyme.Count{Value: "l", N: 2})
	assert.Contains(t, result.Phonemes.Vowel, rhyme.Count{Value: "ɛ", N: 0})
}

func TestStatsText(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "8 entries\n")
	assert.Contains(t, out, "\npart\n")
	assert.Contains(t, out, "  affix  2\n")
}

func TestStatsEmptyDatabase(t *testing.T) {
	ws := newWorkspace(t, []lang.Entry{}...)

	out, err := ws.run("--format", "json", "stats")
	require.NoError(t, err)

	var result StatsResult
	decodeData(t, out, &result)
	assert.Equal(t, 0, result.Entries)
	assert.Empty(t, result.Parts)
}
