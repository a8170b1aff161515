package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParsesEmbeddedDefinitions(t *testing.T) {
	dict, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, dict.Terms())

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, dict, again, "Default should memoize")
}

func TestLookupCaseInsensitive(t *testing.T) {
	dict, err := Parse([]byte("MUF: maximum usable frequency\nAurora: polar lights\n"))
	require.NoError(t, err)

	for _, term := range []string{"MUF", "muf", "Muf", " muf "} {
		def, ok := dict.Lookup(term)
		require.True(t, ok, "lookup %q", term)
		assert.Equal(t, "maximum usable frequency", def)
	}

	_, ok := dict.Lookup("sporadic-e")
	assert.False(t, ok)
}

func TestTermsSorted(t *testing.T) {
	dict, err := Parse([]byte("Zulu: z\nAlpha: a\nMike: m\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mike", "Zulu"}, dict.Terms())
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	assert.Error(t, err)

	_, err = Parse([]byte(""))
	assert.Error(t, err)
}
