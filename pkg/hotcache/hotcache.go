// Package hotcache remembers recent misspelling-to-suggestion lookups so a
// long-running corrigo serve process doesn't re-run edit-distance
// generation and ranking for the same misspelled word twice in a row. It is
// a bounded, LRU-evicted cache keyed on the misspelling itself, backed by a
// patricia trie so a future prefix-style query ("every cached misspelling
// starting with 'rec'") is a single subtree walk rather than a full scan.
package hotcache

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Cache holds suggestion lists for at most maxWords misspellings, evicting
// the least recently used entry once full.
type Cache struct {
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxWords    int
	hits        int64
	misses      int64
	mu          sync.RWMutex
}

// New returns an empty Cache bounded to maxWords entries.
func New(maxWords int) *Cache {
	return &Cache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get returns the cached suggestion list for word, if present, and marks it
// as just accessed.
func (c *Cache) Get(word string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.trie.Get(patricia.Prefix(word))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.accessTime[word] = c.nextAccessTime()
	c.hits++
	suggestions, _ := item.([]string)
	return suggestions, true
}

// Put stores suggestions for word, evicting the least recently used entry
// first if the cache is already at capacity.
func (c *Cache) Put(word string, suggestions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accessTime[word]; !exists && len(c.accessTime) >= c.maxWords {
		c.evictLRU()
	}
	c.trie.Set(patricia.Prefix(word), suggestions)
	c.accessTime[word] = c.nextAccessTime()
}

// Stats reports the cache's current size and lifetime hit/miss counts, which
// corrigo serve returns in answer to a StatsRequest.
func (c *Cache) Stats() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]int64{
		"entries":  int64(len(c.accessTime)),
		"capacity": int64(c.maxWords),
		"hits":     c.hits,
		"misses":   c.misses,
	}
}

func (c *Cache) nextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = 1<<63 - 1

	for word, t := range c.accessTime {
		if t < oldestTime {
			oldestTime, oldestWord = t, word
		}
	}
	if oldestWord != "" {
		c.trie.Delete(patricia.Prefix(oldestWord))
		delete(c.accessTime, oldestWord)
		log.Debugf("evicted %q from hot cache", oldestWord)
	}
}
