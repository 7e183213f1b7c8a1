// Package logger builds configured slog.Logger instances with environment
// presets and context-aware attribute injection.
//
// Loggers are constructed once at process start and passed to components
// explicitly; nothing in this package reads global state.
//
//	log := logger.New(logger.WithEnvironment(cfg.Environment, "newsletter"))
//	logger.SetAsDefault(log)
//
// The returned logger emits JSON in production and human-readable text in
// development. Attribute helpers (Error, SubscriberID, Recipient) keep log
// field names consistent across the codebase.
package logger
