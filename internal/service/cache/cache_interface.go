package cache

// Cache defines the interface for cache operations keyed by a request digest.
type Cache[V any] interface {
	Get(key uint64) (V, bool)
	Set(key uint64, value V)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}
