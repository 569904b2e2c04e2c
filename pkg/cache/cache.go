// Package cache provides the persistent, expiring key/value store used to
// avoid refetching standings data.
//
// # Overview
//
// [Store] keeps every entry in memory and mirrors the whole map to a single
// JSON snapshot file on every write. Entries carry an absolute expiration;
// a lookup only succeeds while the expiration is strictly in the future.
//
//	store := cache.NewStore("standings-cache.json", cache.WithLogger(logger))
//	var snap standings.Snapshot
//	if !store.Get("standings-2026", &snap) {
//	    snap = fetch()
//	    _ = store.Set("standings-2026", snap, cache.NextDaily(time.Now(), 4))
//	}
//
// # Backing File
//
// The snapshot file maps each key to an object with three fields:
//
//	{
//	    "standings-2026": {
//	        "expiration": 1792483200000,
//	        "comment": "Tue Oct 20 2026 04:00:00 GMT-0400 (EDT)",
//	        "item": { ... }
//	    }
//	}
//
// expiration is Unix epoch milliseconds, comment is the expiration rendered
// for humans, and item is any JSON value. These names are read by other tools
// and must not change.
//
// # Failure Model
//
// Construction never fails. A missing, unreadable or malformed file is logged
// and the store starts empty. Entries already expired when the file is loaded
// are dropped. A single process is assumed to own the file; concurrent
// writers from other processes are not coordinated.
package cache

import "time"

// Cache is the contract shared by [Store] and [NullCache].
//
// Get decodes the stored value into v (a pointer) and reports whether a live
// entry was found. It never returns an error: missing, expired and
// undecodable entries are all misses.
//
// Set stores v until expires and persists before returning.
type Cache interface {
	Get(key string, v any) bool
	Set(key string, v any, expires time.Time) error
	Delete(key string) error
}
