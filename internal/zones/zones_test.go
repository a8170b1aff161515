package zones

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinents(t *testing.T) {
	cc := Continents()
	require.Len(t, cc, 2)
	assert.Equal(t, "NA", cc[0].Code)
	assert.Equal(t, "EU", cc[1].Code)

	na, ok := ByCode("NA")
	require.True(t, ok)
	assert.Equal(t, "North America", na.Label)

	_, ok = ByCode("AF")
	assert.False(t, ok)
}

func TestZonesFor(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, ZonesFor("NA"))
	assert.Equal(t, []int{14, 15, 16, 21}, ZonesFor("EU"))
	assert.Nil(t, ZonesFor("XX"))
}

func TestGraphURLs(t *testing.T) {
	now := time.Unix(900*2000, 0)
	assert.Equal(t,
		"https://bsdworld.org/DXCC/cqzone/14/latest.webp?s=2000",
		ZoneGraphURL(14, now))
	assert.Equal(t,
		"https://bsdworld.org/DXCC/continent/NA/latest.webp?s=2000",
		ContinentGraphURL("NA", now))
}
