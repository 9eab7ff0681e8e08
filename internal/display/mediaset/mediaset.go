// Package mediaset splits flat media URL lists into fixed-size sets and
// tracks the secondary rotation cursor over those sets.
package mediaset

import (
	"sync"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// ImagesPerSet returns how many images one set of the given content type
// shows at once. Non-image types have no image sets.
func ImagesPerSet(ct types.ContentType) int {
	switch ct {
	case types.ContentTypeImageSingle:
		return 1
	case types.ContentTypeImageDual:
		return 2
	case types.ContentTypeImageQuad:
		return 4
	default:
		return 0
	}
}

// ImageSets partitions urls into consecutive chunks of ImagesPerSet length.
// The final chunk may be shorter than the nominal size; PadSet fills the
// missing slots at render time so the grid layout stays stable.
func ImageSets(urls []string, ct types.ContentType) [][]string {
	per := ImagesPerSet(ct)
	if per == 0 || len(urls) == 0 {
		return nil
	}
	sets := make([][]string, 0, (len(urls)+per-1)/per)
	for i := 0; i < len(urls); i += per {
		end := i + per
		if end > len(urls) {
			end = len(urls)
		}
		sets = append(sets, urls[i:end])
	}
	return sets
}

// VideoSets treats each video as its own set; videos play one at a time.
func VideoSets(urls []string) [][]string {
	if len(urls) == 0 {
		return nil
	}
	sets := make([][]string, len(urls))
	for i, u := range urls {
		sets[i] = []string{u}
	}
	return sets
}

// PadSet returns set extended with empty slots to size. Empty slots render
// as transparent placeholders rather than being dropped.
func PadSet(set []string, size int) []string {
	if len(set) >= size {
		return set
	}
	padded := make([]string, size)
	copy(padded, set)
	return padded
}

// Cursor is a rotation index over a set list. Image cursors advance on their
// own timer; video cursors advance on playback completion (or error, which
// is treated identically so a failed video never stalls the display).
type Cursor struct {
	mu    sync.Mutex
	index int
	count int
}

// NewCursor returns a cursor over count sets.
func NewCursor(count int) *Cursor {
	return &Cursor{count: count}
}

// Index returns the current set index, clamped to 0 when the set list
// shrank underneath the cursor.
func (c *Cursor) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index >= c.count {
		return 0
	}
	return c.index
}

// Count returns the number of sets.
func (c *Cursor) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Advance moves to the next set, wrapping to 0, and returns the new index.
func (c *Cursor) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.count
	return c.index
}

// AtLast reports whether the cursor is on the final set.
func (c *Cursor) AtLast() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count == 0 || c.index >= c.count-1
}

// Reset moves the cursor back to the first set, optionally resizing it.
func (c *Cursor) Reset(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
	c.count = count
}
