package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/newsletter/internal/newsletter"
	"github.com/dmitrymomot/newsletter/internal/subscription"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/validator"
)

// SubscriptionService is the slice of the subscription workflows the HTTP
// layer consumes.
type SubscriptionService interface {
	Subscribe(ctx context.Context, params subscription.SubscribeParams) error
	Confirm(ctx context.Context, token string) error
}

// NewsletterService is the slice of the publication workflow the HTTP layer
// consumes.
type NewsletterService interface {
	Publish(ctx context.Context, issue newsletter.Issue) error
}

type handlers struct {
	subscriptions SubscriptionService
	newsletters   NewsletterService
	log           *slog.Logger
}

func newHandlers(subscriptions SubscriptionService, newsletters NewsletterService, log *slog.Logger) *handlers {
	if subscriptions == nil {
		panic("api: SubscriptionService is required")
	}
	if newsletters == nil {
		panic("api: NewsletterService is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &handlers{
		subscriptions: subscriptions,
		newsletters:   newsletters,
		log:           log,
	}
}

// subscribe handles POST /subscriptions (application/x-www-form-urlencoded).
func (h *handlers) subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form data")
		return
	}

	err := h.subscriptions.Subscribe(r.Context(), subscription.SubscribeParams{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case validator.IsValidationError(err):
		badRequest(w, err.Error())
	default:
		h.internalError(w, r, "subscribe failed", err)
	}
}

// confirmSubscription handles GET /subscriptions/confirm.
func (h *handlers) confirmSubscription(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("subscription_token")
	if token == "" {
		badRequest(w, "subscription_token is required")
		return
	}

	err := h.subscriptions.Confirm(r.Context(), token)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, subscription.ErrTokenNotFound):
		badRequest(w, "unknown subscription token")
	default:
		h.internalError(w, r, "confirm failed", err)
	}
}

type publishRequest struct {
	Title   string `json:"title"`
	Content struct {
		HTML string `json:"html"`
		Text string `json:"text"`
	} `json:"content"`
}

// publishNewsletter handles POST /newsletters (application/json).
func (h *handlers) publishNewsletter(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if err == io.EOF {
			badRequest(w, "empty body")
			return
		}
		badRequest(w, "invalid JSON payload")
		return
	}

	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content.HTML) == "" ||
		strings.TrimSpace(req.Content.Text) == "" {
		badRequest(w, "title, content.html and content.text are required")
		return
	}

	err := h.newsletters.Publish(r.Context(), newsletter.Issue{
		Title:       req.Title,
		ContentHTML: req.Content.HTML,
		ContentText: req.Content.Text,
	})
	if err != nil {
		h.internalError(w, r, "publish failed", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// internalError logs the full causal chain and answers with a bare 500;
// internals never reach the client.
func (h *handlers) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg, logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func badRequest(w http.ResponseWriter, reason string) {
	http.Error(w, reason, http.StatusBadRequest)
}
