package subscription

import "errors"

var (
	// ErrTokenNotFound is returned when a confirmation token does not exist.
	// Maps to a client error at the HTTP boundary.
	ErrTokenNotFound = errors.New("subscription token not found")

	// ErrPersistenceFailed wraps storage-layer failures (connection,
	// constraint, transaction).
	ErrPersistenceFailed = errors.New("subscription storage failure")

	// ErrInvalidTx is returned when a store method receives a transaction
	// that was not produced by the same store's Begin.
	ErrInvalidTx = errors.New("transaction does not belong to this store")
)
