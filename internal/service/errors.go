package service

import "errors"

// Store error taxonomy. Handlers map these onto HTTP statuses; nothing is
// retried automatically and a failed write leaves the stored collection
// exactly as it was.
var (
	// ErrStoreUnavailable means no connection to the backing store was
	// established.
	ErrStoreUnavailable = errors.New("recipe store unavailable")

	// ErrStoreRead means a listing or lookup failed. No partial record
	// list is ever returned alongside it.
	ErrStoreRead = errors.New("recipe store read failed")

	// ErrStoreWrite means a create, update or delete was rejected.
	ErrStoreWrite = errors.New("recipe store write failed")

	// ErrNotFound means the recipe id is unknown.
	ErrNotFound = errors.New("recipe not found")

	// ErrValidation marks input rejected before any store call is made.
	ErrValidation = errors.New("validation failed")
)
