// Package errs defines the error shape returned to API clients.
//
// Handlers and services return *HTTPError values; the global Echo error
// handler serializes them as JSON and converts everything else into one.
package errs
