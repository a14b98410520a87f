// Package config loads runtime configuration from multiple sources (a YAML or
// TOML file, environment variables including an optional .env file, CLI flags)
// with precedence: CLI flags > config file > Environment variables > Defaults.
// It exposes strongly typed settings, including custom room definitions, to the
// rest of the application.
package config
