package useragent

import "github.com/dmitrymomot/webtools/pkg/cache"

// Classifier memoizes Parse for servers that see the same few hundred
// User-Agent strings over and over. Results are kept in a bounded LRU keyed
// by the normalized string. It is safe for concurrent use.
type Classifier struct {
	lru *cache.LRU[string, UserAgent]
}

// NewClassifier returns a Classifier remembering up to capacity strings.
// A capacity <= 0 disables memoization and every call goes to Parse.
func NewClassifier(capacity int) *Classifier {
	if capacity <= 0 {
		return &Classifier{}
	}
	return &Classifier{lru: cache.New[string, UserAgent](capacity)}
}

// Parse classifies raw, serving repeated inputs from the cache. The result is
// identical to the package-level Parse, including the raw string.
func (c *Classifier) Parse(raw string) UserAgent {
	if c == nil || c.lru == nil {
		return Parse(raw)
	}

	key := Normalize(raw)
	ua, ok := c.lru.Get(key)
	if !ok {
		// Concurrent misses on one key classify twice; results are equal.
		ua = classify(key)
		c.lru.Add(key, ua)
	}
	ua.raw = raw
	return ua
}

// Len returns the number of cached entries.
func (c *Classifier) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Stats returns the cache counters. It is zero when memoization is disabled.
func (c *Classifier) Stats() cache.Stats {
	if c == nil || c.lru == nil {
		return cache.Stats{}
	}
	return c.lru.Stats()
}
