package newsletter

import "errors"

var (
	// ErrPersistenceFailed wraps storage-layer failures while loading the
	// confirmed-subscriber listing.
	ErrPersistenceFailed = errors.New("newsletter storage failure")

	// ErrDispatchFailed wraps a delivery failure for one recipient. It
	// aborts the remaining fan-out.
	ErrDispatchFailed = errors.New("newsletter dispatch failure")
)
