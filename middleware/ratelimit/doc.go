// Package ratelimit provides pluggable rate-limiting middleware.
//
// Limiting decisions come from a Store. Two implementations ship with
// the package:
//
//   - MemoryStore: per-key token buckets (golang.org/x/time/rate) with
//     periodic cleanup of idle keys. Suitable for a single process.
//   - RedisStore: fixed-window counters in Redis, shared across
//     processes.
//
// Requests are keyed by client IP by default; supply a KeyFunc to key
// by API token, user id, or a trusted X-Forwarded-For entry. Rejected
// requests receive a 429 problem response with a Retry-After header.
// Store failures fail open: an unreachable Redis never takes the API
// down with it.
package ratelimit
