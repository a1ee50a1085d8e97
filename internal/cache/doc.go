// Package cache provides the in-memory shuffle block cache shared between
// the shuffle-write path and the shuffle HTTP server.
//
// # Overview
//
// The cache maps a shuffle coordinate (shuffle, input, reduce) to the raw
// bytes of one output partition. The write side is populated by the engine's
// shuffle-write code after it materializes a partition; the read side is the
// shuffle HTTP handler answering requests from remote workers. Eviction and
// entry lifetime are owned by the writer, not by this package.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│        Shuffle write path           │
//	│     (populates partitions)          │
//	└─────────────────────────────────────┘
//	                 │ Put
//	                 ▼
//	┌─────────────────────────────────────┐
//	│               Cache                 │
//	│   map[Coordinate][]byte + RWMutex   │
//	└─────────────────────────────────────┘
//	                 │ Get (copy-out)
//	                 ▼
//	┌─────────────────────────────────────┐
//	│        Shuffle HTTP handler         │
//	│     (serves remote workers)         │
//	└─────────────────────────────────────┘
//
// # Concurrency and Thread Safety
//
// All methods are safe for concurrent use. Reads take a shared lock and
// copy the matched bytes out before releasing it, so a response body never
// aliases cache memory. Writes take the exclusive lock and store a copy of
// the caller's slice for the same reason.
package cache
