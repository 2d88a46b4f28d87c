// Package core provides the business logic behind the traffic source API.
//
// It is independent of the HTTP layer: web handlers, the converter CLI and
// tests all use it directly.
//
// # Service
//
// [Service] is built once by the composition root and handed to the web
// server. It validates a [RangeRequest] and asks its [Store] for rows.
//
// # Stores
//
//   - [StaticStore] always returns [SampleSources]. It is used when no
//     database is configured.
//   - [PGStore] answers from report rows imported into PostgreSQL and
//     aggregates them per traffic source type.
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages with [MapError].
// Each category has a code for support reference:
//
//   - FILE001-FILE003: report file errors (missing, empty, bad header)
//   - VAL001-VAL003: range and export name validation errors
//   - REQ001-REQ002: malformed or cancelled requests
//   - DB004-DB008: database connectivity, timeouts and configuration
package core
