package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// resource does not exist, e.g. updating a ticket whose id is unknown.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown ticket category).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned when the underlying storage medium rejects an
// operation (quota exceeded, permission denied, medium unavailable).
// For ticket payload writes this is fatal to that operation; for trip
// document saves it only means durability was lost, and the caller logs it
// instead of failing the mutation.
var ErrStorage = errors.New("storage failure")

// ErrParse is returned when a persisted document is present but malformed.
// Loaders treat the document as absent and fall back to defaults; the error
// is logged, never fatal.
var ErrParse = errors.New("parse failure")
