// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing. Every package of this module
// that needs settings declares its own struct with `env` tags and loads it
// through Load:
//
//	var srv httpserver.Config
//	config.MustLoad(&srv)
//
// Parsed values are cached per struct type for the lifetime of the process.
// Tests that change the environment call Reset before loading again.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
