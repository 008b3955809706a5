package constant

import "time"

// Cache configuration constants
const (
	// EPGCacheTTL defines the time-to-live for cached EPG pages
	EPGCacheTTL = 5 * time.Minute
	// CacheNumCounters is the number of keys to track frequency (1M)
	CacheNumCounters = 1e6
	// CacheMaxCost is the maximum cost of cache (16MB)
	CacheMaxCost = 16 << 20
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
