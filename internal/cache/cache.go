package cache

import "time"

// Cache is the minimal key-value API the stores use for locally cached
// server data (the session-scoped storage the web client kept in the
// browser). Entries may carry a TTL so stale family/board data ages out.
type Cache[K comparable, V any] interface {
	// Get returns the value and whether it was present and not expired.
	Get(key K) (V, bool)

	// Set stores the value. If ttl <= 0 the entry never expires.
	Set(key K, value V, ttl time.Duration)

	// Delete removes a key if present.
	Delete(key K)

	// Len returns the number of non-expired entries.
	Len() int

	// Clear removes all entries.
	Clear()

	// PurgeExpired removes expired entries eagerly; Get otherwise treats
	// them as misses and leaves cleanup lazy.
	PurgeExpired()
}
