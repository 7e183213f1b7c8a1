package subscription

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
	"github.com/dmitrymomot/newsletter/pkg/pg"
)

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	if db == nil {
		panic("subscription: nil connection pool")
	}
	return &PGStore{db: db}
}

type pgTx struct {
	tx pgx.Tx
}

func (t pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return errors.Join(ErrPersistenceFailed, err)
	}
	return nil
}

func (t pgTx) Rollback(ctx context.Context) error {
	// Rollback after Commit returns pgx.ErrTxClosed; deferring it
	// unconditionally is part of the Tx contract.
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Join(ErrPersistenceFailed, err)
	}
	return nil
}

func (s *PGStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errors.Join(ErrPersistenceFailed, err)
	}
	return pgTx{tx: tx}, nil
}

func (s *PGStore) InsertSubscriber(ctx context.Context, tx Tx, sub subscriber.Subscriber) error {
	t, ok := tx.(pgTx)
	if !ok {
		return ErrInvalidTx
	}

	_, err := t.tx.Exec(ctx,
		`INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Email.String(), sub.Name.String(), sub.SubscribedAt, string(sub.Status),
	)
	if err != nil {
		return errors.Join(ErrPersistenceFailed, err)
	}
	return nil
}

func (s *PGStore) StoreToken(ctx context.Context, tx Tx, subscriberID uuid.UUID, token string) error {
	t, ok := tx.(pgTx)
	if !ok {
		return ErrInvalidTx
	}

	_, err := t.tx.Exec(ctx,
		`INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		 VALUES ($1, $2)`,
		token, subscriberID,
	)
	if err != nil {
		return errors.Join(ErrPersistenceFailed, err)
	}
	return nil
}

func (s *PGStore) FindSubscriberByToken(ctx context.Context, token string) (uuid.UUID, error) {
	var subscriberID uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`,
		token,
	).Scan(&subscriberID)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return uuid.Nil, ErrTokenNotFound
		}
		return uuid.Nil, errors.Join(ErrPersistenceFailed, err)
	}
	return subscriberID, nil
}

func (s *PGStore) MarkConfirmed(ctx context.Context, subscriberID uuid.UUID) error {
	// Plain UPDATE keeps confirmation idempotent: re-confirming sets the
	// same value again and reports success.
	_, err := s.db.Exec(ctx,
		`UPDATE subscriptions SET status = $1 WHERE id = $2`,
		string(subscriber.StatusConfirmed), subscriberID,
	)
	if err != nil {
		return errors.Join(ErrPersistenceFailed, err)
	}
	return nil
}
