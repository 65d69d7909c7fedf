// Package remote provides the HTTP adapter for the library search service.
//
// Client implements driven.SearchGateway (GET /search) and
// driven.LikeGateway (POST /like). Every request carries an X-Request-ID
// and may be throttled by a token bucket.
package remote
