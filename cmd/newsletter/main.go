package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/newsletter/internal/api"
	"github.com/dmitrymomot/newsletter/internal/newsletter"
	"github.com/dmitrymomot/newsletter/internal/subscriber"
	"github.com/dmitrymomot/newsletter/internal/subscription"
	"github.com/dmitrymomot/newsletter/pkg/config"
	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/httpserver"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/pg"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	// BaseURL is the public address embedded in confirmation links.
	BaseURL string `env:"APP_BASE_URL,required"`
	// DevEmailDir receives outbound emails as files when no Postmark
	// server token is configured.
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`

	DB    pg.Config
	Email email.Config
	HTTP  httpserver.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, "newsletter"),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	// The sender identity goes through the same parser as subscriber
	// addresses; a bad SENDER_EMAIL should stop the process here, not fail
	// the first send.
	if _, err := subscriber.ParseEmail(cfg.Email.SenderEmail); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.DB, log); err != nil {
		return err
	}

	var sender email.EmailSender
	if cfg.Email.PostmarkServerToken != "" {
		sender, err = email.NewPostmarkClient(cfg.Email)
		if err != nil {
			return err
		}
	} else {
		log.WarnContext(ctx, "no Postmark token configured, writing emails to disk",
			slog.String("dir", cfg.DevEmailDir))
		sender = email.NewDevSender(cfg.DevEmailDir)
	}

	router := api.NewRouter(api.Deps{
		Subscriptions: subscription.NewService(subscription.NewPGStore(pool), sender, cfg.BaseURL, log),
		Newsletters:   newsletter.NewService(newsletter.NewPGStore(pool), sender, log),
		Log:           log,
		Readiness:     []func(context.Context) error{pg.Healthcheck(pool)},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
