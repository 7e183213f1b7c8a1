package newsletter

import (
	"context"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
)

// ConfirmedSubscriber is one row from the confirmed-subscriber listing.
// Stored emails are re-parsed at read time; a row whose address no longer
// validates carries the parse error instead of failing the whole listing,
// so the caller can skip it and keep going.
type ConfirmedSubscriber struct {
	Email subscriber.EmailAddress
	Err   error
}

// Store is the persistence surface the publication workflow needs.
type Store interface {
	ListConfirmedSubscribers(ctx context.Context) ([]ConfirmedSubscriber, error)
}
