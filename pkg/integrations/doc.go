// Package integrations provides HTTP clients for the upstream standings feed.
//
// # Overview
//
// The feed itself lives in a subpackage:
//
//   - [mlb]: MLB Stats API standings endpoint, plus embedded fixture data
//
// # Client Pattern
//
// Feed clients embed the shared [Client], which handles:
//   - A fixed per-request timeout ([DefaultTimeout] unless configured)
//   - Default headers (the stats API wants a User-Agent)
//   - Status classification into [ErrNotFound] and [ErrNetwork]
//
// Requests are never retried. A timeout, a non-2xx status and an empty
// payload are all plain failures; callers treat them the same way.
//
// [mlb]: github.com/matzehuels/standings/pkg/integrations/mlb
package integrations
