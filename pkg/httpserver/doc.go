// Package httpserver wraps net/http.Server with graceful shutdown, option
// based configuration, and probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is canceled, SIGINT/SIGTERM arrives, or the
// listener fails, then drains in-flight requests within ShutdownTimeout.
package httpserver
