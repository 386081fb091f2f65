// Package config loads koji's TOML configuration.
//
// A config file is optional: Load falls back to Default when none is
// found. Files are searched in this order: the explicit path, then
// ~/.config/koji/config.toml, then ./koji.toml.
package config
