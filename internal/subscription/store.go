package subscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
)

// Tx is a transaction boundary handed out by Store.Begin. Rollback after a
// successful Commit must be a no-op so callers can defer it unconditionally.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store is the persistence surface for the subscription lifecycle.
// InsertSubscriber and StoreToken run inside the caller-managed transaction
// so a subscriber is never observable without its token.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
	InsertSubscriber(ctx context.Context, tx Tx, sub subscriber.Subscriber) error
	StoreToken(ctx context.Context, tx Tx, subscriberID uuid.UUID, token string) error

	// FindSubscriberByToken returns ErrTokenNotFound for unknown tokens.
	FindSubscriberByToken(ctx context.Context, token string) (uuid.UUID, error)

	// MarkConfirmed is idempotent: confirming an already-confirmed
	// subscriber succeeds silently.
	MarkConfirmed(ctx context.Context, subscriberID uuid.UUID) error
}
