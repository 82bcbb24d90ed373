// Package middleware holds the global Echo middleware and the global
// error handler.
//
// They cover the cross-cutting concerns: request ids, request-scoped
// loggers, request logging, CORS, secure headers, rate limiting, panic
// recovery and New Relic tracing.
package middleware
