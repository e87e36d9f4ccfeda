// Package config loads and validates fengen configuration.
//
// It supplies the default FEN metadata used when a command does not set a
// field explicitly, plus logging settings, read from a TOML file.
package config
