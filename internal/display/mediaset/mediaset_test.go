package mediaset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestImagesPerSet(t *testing.T) {
	assert.Equal(t, 1, ImagesPerSet(types.ContentTypeImageSingle))
	assert.Equal(t, 2, ImagesPerSet(types.ContentTypeImageDual))
	assert.Equal(t, 4, ImagesPerSet(types.ContentTypeImageQuad))
	assert.Equal(t, 0, ImagesPerSet(types.ContentTypeText))
	assert.Equal(t, 0, ImagesPerSet(types.ContentTypeVideo))
}

func TestImageSets_QuadPartition(t *testing.T) {
	// 11 urls in quad layout: two full sets and a remainder of three.
	sets := ImageSets(urls(11), types.ContentTypeImageQuad)
	require.Len(t, sets, 3)
	assert.Len(t, sets[0], 4)
	assert.Len(t, sets[1], 4)
	assert.Len(t, sets[2], 3)
}

func TestImageSets_ExactFit(t *testing.T) {
	sets := ImageSets(urls(4), types.ContentTypeImageDual)
	require.Len(t, sets, 2)
	assert.Equal(t, []string{"a", "b"}, sets[0])
	assert.Equal(t, []string{"c", "d"}, sets[1])
}

func TestImageSets_Empty(t *testing.T) {
	assert.Nil(t, ImageSets(nil, types.ContentTypeImageQuad))
	assert.Nil(t, ImageSets(urls(3), types.ContentTypeText))
}

func TestVideoSets(t *testing.T) {
	sets := VideoSets([]string{"v1", "v2"})
	require.Len(t, sets, 2)
	assert.Equal(t, []string{"v1"}, sets[0])
	assert.Equal(t, []string{"v2"}, sets[1])
	assert.Nil(t, VideoSets(nil))
}

func TestPadSet(t *testing.T) {
	padded := PadSet([]string{"a", "b", "c"}, 4)
	assert.Equal(t, []string{"a", "b", "c", ""}, padded)

	full := []string{"a", "b"}
	assert.Equal(t, full, PadSet(full, 2))
}

func TestCursor_AdvanceWraps(t *testing.T) {
	c := NewCursor(3)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Advance())
	assert.Equal(t, 2, c.Advance())
	assert.True(t, c.AtLast())
	assert.Equal(t, 0, c.Advance())
	assert.False(t, c.AtLast())
}

func TestCursor_Empty(t *testing.T) {
	c := NewCursor(0)
	assert.Equal(t, 0, c.Advance())
	assert.True(t, c.AtLast())
}

func TestCursor_Reset(t *testing.T) {
	c := NewCursor(3)
	c.Advance()
	c.Reset(2)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 2, c.Count())
}

func TestCursor_ClampsAfterShrink(t *testing.T) {
	c := NewCursor(3)
	c.Advance()
	c.Advance()
	c.count = 1
	assert.Equal(t, 0, c.Index())
}
