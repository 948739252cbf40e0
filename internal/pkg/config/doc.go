// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and may be overridden by ACCOUNT_*
// environment variables. Every settings struct validates itself before it
// is handed to the component it configures.
package config
