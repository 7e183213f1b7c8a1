package newsletter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
)

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	if db == nil {
		panic("newsletter: nil connection pool")
	}
	return &PGStore{db: db}
}

func (s *PGStore) ListConfirmedSubscribers(ctx context.Context) ([]ConfirmedSubscriber, error) {
	rows, err := s.db.Query(ctx,
		`SELECT email FROM subscriptions WHERE status = $1`,
		string(subscriber.StatusConfirmed),
	)
	if err != nil {
		return nil, errors.Join(ErrPersistenceFailed, err)
	}
	defer rows.Close()

	var subscribers []ConfirmedSubscriber
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Join(ErrPersistenceFailed, err)
		}

		addr, parseErr := subscriber.ParseEmail(raw)
		subscribers = append(subscribers, ConfirmedSubscriber{
			Email: addr,
			Err:   parseErr,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrPersistenceFailed, err)
	}

	return subscribers, nil
}
