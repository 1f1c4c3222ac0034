// Package cache provides a generic, bounded LRU map.
//
// The user agent classifier uses it to memoize results keyed by the
// normalized header:
//
//	c := cache.New[string, useragent.UserAgent](4096)
//	if ua, ok := c.Get(key); ok {
//		return ua
//	}
//	c.Add(key, classify(key))
//
// Stats exposes hit, miss and eviction counters.
package cache
