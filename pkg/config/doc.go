// Package config loads and saves the last used insert settings.
//
// Values are layered with koanf: the embedded defaults, then the user's
// config.toml, then BLOCKINSERT_* environment variables, then overrides
// supplied by the caller (usually command-line flags). Nested keys in
// environment variables are separated by a double underscore, so
// BLOCKINSERT_INSERT__INSERT_AS=objects sets insert.insert_as.
package config
