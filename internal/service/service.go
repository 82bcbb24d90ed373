// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated requests, checks existence and uniqueness through the
// accessors, performs the write and translates misses and duplicates
// into typed HTTP errors.
package service
