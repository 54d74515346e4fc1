package orders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"matajer.app/pkg/view"
)

func TestViewCacheEvictionIsLRU(t *testing.T) {
	c := newViewCache(2)

	a := &view.Order{ID: "a"}
	b := &view.Order{ID: "b"}

	c.add("a", a)
	c.add("b", b)

	// touch a so b becomes the least recently used entry
	_, ok := c.get("a")
	assert.True(t, ok)

	c.add("c", &view.Order{ID: "c"})

	_, ok = c.get("b")
	assert.False(t, ok, "b should be evicted, not a")

	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 2, c.len())
}

func TestViewCacheAddExistingRefreshes(t *testing.T) {
	c := newViewCache(2)
	c.add("a", &view.Order{ID: "a"})
	c.add("b", &view.Order{ID: "b"})

	// re-adding a moves it to the front without growing the cache
	fresh := &view.Order{ID: "a2"}
	c.add("a", fresh)
	assert.Equal(t, 2, c.len())

	c.add("c", &view.Order{ID: "c"})
	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Same(t, fresh, got)
}

func TestViewCacheDefaultCapacity(t *testing.T) {
	c := newViewCache(0)
	for i := 0; i < 80; i++ {
		c.add(fmt.Sprintf("k%d", i), &view.Order{})
	}
	assert.Equal(t, defaultCacheCap, c.len())

	// the newest keys survive
	_, ok := c.get("k79")
	assert.True(t, ok)
	_, ok = c.get("k0")
	assert.False(t, ok)
}
