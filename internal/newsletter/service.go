package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/logger"
)

// Issue is one newsletter publication: a title used as the email subject
// and both content parts.
type Issue struct {
	Title       string
	ContentHTML string
	ContentText string
}

// Service fans a newsletter issue out to every confirmed subscriber.
type Service struct {
	store  Store
	sender email.EmailSender
	log    *slog.Logger
}

func NewService(store Store, sender email.EmailSender, log *slog.Logger) *Service {
	if store == nil {
		panic("newsletter: Store is required")
	}
	if sender == nil {
		panic("newsletter: EmailSender is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:  store,
		sender: sender,
		log:    log,
	}
}

// Publish sends the issue to each confirmed subscriber, sequentially and
// one at a time. A stored address that no longer validates is logged and
// skipped. A dispatch failure aborts the remaining fan-out and surfaces
// ErrDispatchFailed with the recipient attached.
//
// The abort-on-first-failure behavior means one bad mailbox can leave the
// rest of the batch unsent; it is kept intentionally until a partial
// success model is agreed on.
func (s *Service) Publish(ctx context.Context, issue Issue) error {
	subscribers, err := s.store.ListConfirmedSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("load confirmed subscribers: %w", err)
	}

	for _, sub := range subscribers {
		if sub.Err != nil {
			s.log.WarnContext(ctx, "skipping subscriber with invalid stored email",
				logger.Error(sub.Err),
			)
			continue
		}

		if err := s.sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   sub.Email.String(),
			Subject:  issue.Title,
			BodyHTML: issue.ContentHTML,
			BodyText: issue.ContentText,
			Tag:      "newsletter-issue",
		}); err != nil {
			return errors.Join(
				ErrDispatchFailed,
				fmt.Errorf("send newsletter issue to %s: %w", sub.Email, err),
			)
		}
	}

	return nil
}
