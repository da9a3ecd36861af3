// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load / MustLoad parse a struct annotated with `env` tags and cache the
//     result per type, so repeated loads are cheap and consistent.
//   - LoadEnv / MustLoadEnv read one or more .env files into the process
//     environment; later files win.
//   - ForceReloadConfig and ResetCache exist mostly for tests.
//
// The default .env in the working directory is loaded, if present, before
// the first parse.
//
// # Usage
//
//	var cfg requestid.Config
//	config.MustLoad(&cfg)
//	tracer := requestid.NewFromConfig(cfg)
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
