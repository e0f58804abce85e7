package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const janitorInterval = 2 * time.Minute

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by result (hit, miss, expired).",
	}, []string{"cache", "result"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped by capacity or expiry.",
	}, []string{"cache", "reason"})

	cacheEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkout_service",
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of cached entries.",
	}, []string{"cache"})
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache is a fixed-capacity cache whose entries also expire after ttl.
type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
}

func NewLRUCache(name string, capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		cacheLookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if c.expired(ent) {
		c.remove(el, "expired")
		cacheLookups.WithLabelValues(c.name, "expired").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	cacheLookups.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

// Set stores value and restarts its ttl.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	cacheEntries.WithLabelValues(c.name).Set(float64(c.order.Len()))

	for c.order.Len() > c.capacity {
		c.remove(c.order.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el, "")
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start runs the expiry janitor until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*entry)) {
			c.remove(el, "expired")
		}
		el = prev
	}
}

func (c *LRUCache) expired(ent *entry) bool {
	return c.now().After(ent.expiresAt)
}

// remove expects c.mu held. An empty reason is an explicit delete.
func (c *LRUCache) remove(el *list.Element, reason string) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)

	if reason != "" {
		cacheEvictions.WithLabelValues(c.name, reason).Inc()
	}
	cacheEntries.WithLabelValues(c.name).Set(float64(c.order.Len()))
}
