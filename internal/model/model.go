// Package model holds the persisted entities and the request/response
// payloads exchanged over HTTP.
package model
