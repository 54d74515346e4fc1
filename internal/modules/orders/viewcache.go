package orders

import (
	"container/list"
	"sync"

	"matajer.app/pkg/view"
)

// viewCache is a bounded LRU over formatted orders. Eviction is true LRU,
// not FIFO: a get refreshes recency. Mutex-guarded since handlers share one
// formatter across requests.
type viewCache struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List
	items map[string]*list.Element
}

type cacheEntry struct {
	key string
	val *view.Order
}

const defaultCacheCap = 50

func newViewCache(capacity int) *viewCache {
	if capacity <= 0 {
		capacity = defaultCacheCap
	}
	return &viewCache{
		cap:   capacity,
		ll:    list.New(),
		items: make(map[string]*list.Element, capacity),
	}
}

func (c *viewCache) get(key string) (*view.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).val, true
}

func (c *viewCache) add(key string, val *view.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*cacheEntry).val = val
		return
	}
	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, val: val})
	for c.ll.Len() > c.cap {
		back := c.ll.Back()
		c.ll.Remove(back)
		delete(c.items, back.Value.(*cacheEntry).key)
	}
}

func (c *viewCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
