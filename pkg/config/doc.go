// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each component owns its Config struct and tags; the process entrypoint
// composes them and loads everything once before wiring dependencies:
//
//	var cfg struct {
//		App    app.Config
//		DB     pg.Config
//		Email  email.Config
//	}
//	config.MustLoad(&cfg)
package config
