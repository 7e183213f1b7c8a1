package subscription_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
	"github.com/dmitrymomot/newsletter/internal/subscription"
	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/validator"
)

// memStore is an in-memory subscription.Store with staged transactions:
// inserts become visible only on Commit, mirroring the real store.
type memStore struct {
	subscribers map[uuid.UUID]subscriber.Subscriber
	tokens      map[string]uuid.UUID

	beginErr  error
	insertErr error
	tokenErr  error
	commitErr error
}

func newMemStore() *memStore {
	return &memStore{
		subscribers: make(map[uuid.UUID]subscriber.Subscriber),
		tokens:      make(map[string]uuid.UUID),
	}
}

type memTx struct {
	store      *memStore
	subs       []subscriber.Subscriber
	tokens     map[string]uuid.UUID
	committed  bool
	rolledBack bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.store.commitErr != nil {
		return t.store.commitErr
	}
	for _, sub := range t.subs {
		t.store.subscribers[sub.ID] = sub
	}
	for token, id := range t.tokens {
		t.store.tokens[token] = id
	}
	t.committed = true
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (s *memStore) Begin(ctx context.Context) (subscription.Tx, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return &memTx{store: s, tokens: make(map[string]uuid.UUID)}, nil
}

func (s *memStore) InsertSubscriber(ctx context.Context, tx subscription.Tx, sub subscriber.Subscriber) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	t := tx.(*memTx)
	t.subs = append(t.subs, sub)
	return nil
}

func (s *memStore) StoreToken(ctx context.Context, tx subscription.Tx, subscriberID uuid.UUID, token string) error {
	if s.tokenErr != nil {
		return s.tokenErr
	}
	t := tx.(*memTx)
	t.tokens[token] = subscriberID
	return nil
}

func (s *memStore) FindSubscriberByToken(ctx context.Context, token string) (uuid.UUID, error) {
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, subscription.ErrTokenNotFound
	}
	return id, nil
}

func (s *memStore) MarkConfirmed(ctx context.Context, subscriberID uuid.UUID) error {
	sub, ok := s.subscribers[subscriberID]
	if !ok {
		return subscription.ErrPersistenceFailed
	}
	sub.Status = subscriber.StatusConfirmed
	s.subscribers[subscriberID] = sub
	return nil
}

// mockSender records dispatch calls through testify's mock machinery.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

const baseURL = "https://newsletter.example.com"

func newService(store subscription.Store, sender email.EmailSender) *subscription.Service {
	return subscription.NewService(store, sender, baseURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validParams() subscription.SubscribeParams {
	return subscription.SubscribeParams{
		Name:  "le guin",
		Email: "ursula_le_guin@gmail.com",
	}
}

func TestService_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("persists pending subscriber with token and sends one email", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		sender := new(mockSender)
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "ursula_le_guin@gmail.com" && p.Subject == "Welcome!"
		})).Return(nil).Once()

		err := newService(store, sender).Subscribe(context.Background(), validParams())
		require.NoError(t, err)

		require.Len(t, store.subscribers, 1)
		for _, sub := range store.subscribers {
			assert.Equal(t, subscriber.StatusPendingConfirmation, sub.Status)
			assert.Equal(t, "ursula_le_guin@gmail.com", sub.Email.String())
			assert.Equal(t, "le guin", sub.Name.String())
		}

		require.Len(t, store.tokens, 1)
		for token, id := range store.tokens {
			assert.Len(t, token, 25)
			_, ok := store.subscribers[id]
			assert.True(t, ok, "token must reference the inserted subscriber")
		}

		sender.AssertExpectations(t)
	})

	t.Run("confirmation email embeds the stored token", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		sender := new(mockSender)
		var sent email.SendEmailParams
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
			Return(nil).Once()

		err := newService(store, sender).Subscribe(context.Background(), validParams())
		require.NoError(t, err)

		require.Len(t, store.tokens, 1)
		for token := range store.tokens {
			link := baseURL + "/subscriptions/confirm?subscription_token=" + token
			assert.Contains(t, sent.BodyHTML, link)
			assert.Contains(t, sent.BodyText, link)
		}
	})

	t.Run("invalid input persists nothing and sends nothing", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			params subscription.SubscribeParams
		}{
			{name: "empty name", params: subscription.SubscribeParams{Name: "", Email: "user@example.com"}},
			{name: "empty email", params: subscription.SubscribeParams{Name: "le guin", Email: ""}},
			{name: "malformed email", params: subscription.SubscribeParams{Name: "le guin", Email: "not-an-email"}},
			{name: "both empty", params: subscription.SubscribeParams{}},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				store := newMemStore()
				sender := new(mockSender)

				err := newService(store, sender).Subscribe(context.Background(), tt.params)
				require.Error(t, err)
				assert.True(t, validator.IsValidationError(err))
				assert.Empty(t, store.subscribers)
				assert.Empty(t, store.tokens)
				sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("both invalid fields are reported together", func(t *testing.T) {
		t.Parallel()

		err := newService(newMemStore(), new(mockSender)).
			Subscribe(context.Background(), subscription.SubscribeParams{Name: "", Email: "bad"})
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		assert.True(t, ve.Has("name"))
		assert.True(t, ve.Has("email"))
	})

	t.Run("store failure rolls back and sends no email", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")

		tests := []struct {
			name  string
			setup func(*memStore)
		}{
			{name: "begin fails", setup: func(s *memStore) { s.beginErr = storeErr }},
			{name: "insert fails", setup: func(s *memStore) { s.insertErr = storeErr }},
			{name: "token insert fails", setup: func(s *memStore) { s.tokenErr = storeErr }},
			{name: "commit fails", setup: func(s *memStore) { s.commitErr = storeErr }},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				store := newMemStore()
				tt.setup(store)
				sender := new(mockSender)

				err := newService(store, sender).Subscribe(context.Background(), validParams())
				require.Error(t, err)
				assert.ErrorIs(t, err, storeErr)
				assert.Empty(t, store.subscribers)
				assert.Empty(t, store.tokens)
				sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("dispatch failure surfaces but leaves committed state", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		sender := new(mockSender)
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Return(email.ErrFailedToSendEmail).Once()

		err := newService(store, sender).Subscribe(context.Background(), validParams())
		require.Error(t, err)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)

		// The subscriber stays pending with a valid, undelivered token.
		require.Len(t, store.subscribers, 1)
		require.Len(t, store.tokens, 1)
		for _, sub := range store.subscribers {
			assert.Equal(t, subscriber.StatusPendingConfirmation, sub.Status)
		}
	})
}

func TestService_Confirm(t *testing.T) {
	t.Parallel()

	subscribe := func(t *testing.T, store *memStore) string {
		t.Helper()
		sender := new(mockSender)
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Once()
		require.NoError(t, newService(store, sender).Subscribe(context.Background(), validParams()))
		require.Len(t, store.tokens, 1)
		for token := range store.tokens {
			return token
		}
		return ""
	}

	t.Run("valid token confirms the subscriber", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		token := subscribe(t, store)

		err := newService(store, new(mockSender)).Confirm(context.Background(), token)
		require.NoError(t, err)

		for _, sub := range store.subscribers {
			assert.Equal(t, subscriber.StatusConfirmed, sub.Status)
		}
	})

	t.Run("redemption is idempotent", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		token := subscribe(t, store)
		svc := newService(store, new(mockSender))

		require.NoError(t, svc.Confirm(context.Background(), token))
		require.NoError(t, svc.Confirm(context.Background(), token))

		for _, sub := range store.subscribers {
			assert.Equal(t, subscriber.StatusConfirmed, sub.Status)
		}
	})

	t.Run("unknown token mutates nothing", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		subscribe(t, store)

		err := newService(store, new(mockSender)).Confirm(context.Background(), "does-not-exist")
		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrTokenNotFound)

		for _, sub := range store.subscribers {
			assert.Equal(t, subscriber.StatusPendingConfirmation, sub.Status)
		}
	})
}
