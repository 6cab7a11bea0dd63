// Package server exposes the retrieval session controller over HTTP.
//
// The API has two endpoints:
//
//   - POST /search: runs the query twice — first page, then a
//     continuation pass seeded with the first page's exclusion sets —
//     and returns both result sets.
//   - GET /healthz: liveness probe.
package server
