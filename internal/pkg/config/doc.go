// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file and TEXT_VAULT_* environment variables,
// validated, and handed to the CLI and REST entry points.
package config
