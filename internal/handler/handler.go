// Package handler is the HTTP layer behind the router.
//
// It binds requests, validates them through the validation package and
// calls the service layer.
package handler
