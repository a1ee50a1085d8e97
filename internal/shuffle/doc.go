// Package shuffle implements the shuffle-serving core of the engine: it
// makes intermediate output produced by one worker process addressable and
// retrievable by any other worker over HTTP.
//
// # Overview
//
// Four concerns compose into the Manager façade:
//
//   - a process-exclusive working directory for transient shuffle files,
//     allocated once with a randomized name
//   - output-path resolution, which pre-creates the directory and file one
//     partition will be written into
//   - endpoint acquisition, on a fixed port or by probing the IANA dynamic
//     range with bounded retries
//   - the HTTP handler answering /status and /shuffle/{s}/{i}/{r} requests
//     out of the shared block cache
//
// # Architecture
//
//	┌─────────────────────────────────────────┐
//	│               Manager                    │
//	├─────────────────────────────────────────┤
//	│  Working dir   {root}/spark-local-{id}  │
//	│  Shuffle dir   .../shuffle/{s}/{i}/{o}  │
//	│  Server URI    http://{ip}:{port}       │
//	├─────────────────────────────────────────┤
//	│  HTTP API:                              │
//	│    /status              - liveness      │
//	│    /shuffle/{s}/{i}/{r} - cached block  │
//	└─────────────────────────────────────────┘
//
// # Lifecycle
//
// New allocates the working directory, binds the endpoint, and spawns the
// serve loop on a background goroutine. Construction blocks only for the
// short readiness handshake: the serve goroutine reports an immediate
// failure through a single-slot channel, and the constructor races that
// against a 100ms timer, treating silence as a successful start. After New
// returns, the Manager is a passive handle; the serve loop has no shutdown
// path and runs until process exit, and working directories are not removed
// at shutdown.
//
// # Concurrency
//
// Requests are independent, read-only, and handled concurrently; the
// handler holds no per-request state. The shared cache is the only
// cross-goroutine resource, accessed under its own read lock for just long
// enough to copy the matched bytes out.
package shuffle
