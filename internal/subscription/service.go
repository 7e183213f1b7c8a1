package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/validator"
)

// Service orchestrates the subscription lifecycle: sign-up with a pending
// record plus confirmation token, and token redemption.
type Service struct {
	store   Store
	sender  email.EmailSender
	baseURL string
	log     *slog.Logger
}

// NewService wires the subscription workflows. All dependencies are
// required; passing nil is a programming error caught at startup.
func NewService(store Store, sender email.EmailSender, baseURL string, log *slog.Logger) *Service {
	if store == nil {
		panic("subscription: Store is required")
	}
	if sender == nil {
		panic("subscription: EmailSender is required")
	}
	if baseURL == "" {
		panic("subscription: base URL is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:   store,
		sender:  sender,
		baseURL: baseURL,
		log:     log,
	}
}

// SubscribeParams is the raw sign-up input before validation.
type SubscribeParams struct {
	Name  string
	Email string
}

// Subscribe validates the input, persists a pending subscriber together
// with its confirmation token in one transaction, and sends the
// confirmation email after commit.
//
// A failure before commit rolls everything back and no email is sent. A
// dispatch failure after commit is surfaced to the caller but the committed
// row stays: the subscriber remains pending with a valid, undelivered
// token. There is no retry and no compensation for that case.
func (s *Service) Subscribe(ctx context.Context, params SubscribeParams) error {
	addr, name, err := parseSubscribeParams(params)
	if err != nil {
		return err
	}
	sub := subscriber.New(addr, name)

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin subscription transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := s.store.InsertSubscriber(ctx, tx, sub); err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}

	token := GenerateToken()
	if err := s.store.StoreToken(ctx, tx, sub.ID, token); err != nil {
		return fmt.Errorf("store subscription token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit subscription transaction: %w", err)
	}

	s.log.InfoContext(ctx, "subscriber created",
		logger.SubscriberID(sub.ID),
		slog.String("status", string(sub.Status)),
	)

	if err := s.sendConfirmationEmail(ctx, sub.Email, token); err != nil {
		return fmt.Errorf("send confirmation email to %s: %w", sub.Email, err)
	}
	return nil
}

// Confirm redeems a confirmation token, transitioning the owning subscriber
// to confirmed. Unknown tokens return ErrTokenNotFound. Redemption is
// idempotent; the token is kept after use.
func (s *Service) Confirm(ctx context.Context, token string) error {
	subscriberID, err := s.store.FindSubscriberByToken(ctx, token)
	if err != nil {
		return err
	}

	if err := s.store.MarkConfirmed(ctx, subscriberID); err != nil {
		return fmt.Errorf("mark subscriber confirmed: %w", err)
	}

	s.log.InfoContext(ctx, "subscriber confirmed", logger.SubscriberID(subscriberID))
	return nil
}

// parseSubscribeParams validates both fields and accumulates every
// violation into one ValidationErrors value.
func parseSubscribeParams(params SubscribeParams) (subscriber.EmailAddress, subscriber.Name, error) {
	addr, emailErr := subscriber.ParseEmail(params.Email)
	name, nameErr := subscriber.ParseName(params.Name)

	var errs validator.ValidationErrors
	errs = append(errs, validator.ExtractValidationErrors(emailErr)...)
	errs = append(errs, validator.ExtractValidationErrors(nameErr)...)
	if !errs.IsEmpty() {
		return subscriber.EmailAddress{}, subscriber.Name{}, errs
	}

	return addr, name, nil
}

func (s *Service) sendConfirmationEmail(ctx context.Context, to subscriber.EmailAddress, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, token)

	return s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:  to.String(),
		Subject: "Welcome!",
		BodyHTML: fmt.Sprintf(
			`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`,
			link,
		),
		BodyText: fmt.Sprintf(
			"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
			link,
		),
		Tag: "subscription-confirmation",
	})
}
