package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsPure(t *testing.T) {
	first, ok := Lookup("/flux")
	require.True(t, ok)
	second, ok := Lookup("/flux")
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, "https://bsdworld.org/flux.jpg", first.URL)

	_, ok = Lookup("/nonsense")
	assert.False(t, ok)
}

func TestCommandsSorted(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 12)
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1], cmds[i])
	}
	assert.Equal(t, "/aindex", cmds[0])
	assert.Equal(t, "/xray", cmds[len(cmds)-1])
}

func TestKindOf(t *testing.T) {
	photo, err := KindOf(Resource{URL: "https://bsdworld.org/flux.jpg"})
	require.NoError(t, err)
	assert.Equal(t, KindPhoto, photo)
	assert.Equal(t, PhotoWindow, photo.Window())

	video, err := KindOf(Resource{URL: "https://bsdworld.org/muf.mp4"})
	require.NoError(t, err)
	assert.Equal(t, KindVideo, video)
	assert.Equal(t, VideoWindow, video.Window())

	_, err = KindOf(Resource{URL: "https://bsdworld.org/muf.gif"})
	assert.Error(t, err)
}

func TestBucketConstantWithinWindow(t *testing.T) {
	base := time.Unix(1_700_000_400, 0)
	window := PhotoWindow

	start := base.Truncate(window)
	b0 := Bucket(start, window)
	assert.Equal(t, b0, Bucket(start.Add(window-time.Second), window))
	assert.Equal(t, b0+1, Bucket(start.Add(window), window))
}

func TestBucketNonDecreasing(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	prev := Bucket(now, VideoWindow)
	for i := 0; i < 100; i++ {
		now = now.Add(137 * time.Second)
		b := Bucket(now, VideoWindow)
		assert.GreaterOrEqual(t, b, prev)
		prev = b
	}
}

func TestFreshURL(t *testing.T) {
	now := time.Unix(900*1000, 0)
	url := FreshURL("https://bsdworld.org/flux.jpg", PhotoWindow, now)
	assert.Equal(t, "https://bsdworld.org/flux.jpg?s=1000", url)
}
