// Package config loads build options from layered sources using koanf:
// embedded defaults, an optional project config file (TOML or YAML),
// EKIT_* environment variables and explicit overrides from the command line,
// each layer overriding the previous one.
package config
