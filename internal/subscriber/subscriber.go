package subscriber

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a subscriber. It moves exactly once from
// pending to confirmed and never back.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

// Subscriber is one newsletter sign-up.
type Subscriber struct {
	ID           uuid.UUID
	Email        EmailAddress
	Name         Name
	SubscribedAt time.Time
	Status       Status
}

// New creates a pending subscriber with a fresh ID and the current time.
func New(email EmailAddress, name Name) Subscriber {
	return Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		SubscribedAt: time.Now().UTC(),
		Status:       StatusPendingConfirmation,
	}
}
