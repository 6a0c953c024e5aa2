// Package middleware holds the global and route-level Echo middleware:
// request ids, the request-scoped logger, New Relic tracing, Clerk
// authentication, per-IP rate limiting, CORS, panic recovery and the
// global error handler.
package middleware
