// Package config handles loading and parsing matchbook configuration.
//
// # Overview
//
// Configuration is a TOML file at ~/.config/matchbook/config.toml with
// environment-variable overrides on top. Every field has a sensible
// default, so matchbook works with no config file at all.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. TOML file values (explicit path, or the default location)
//  3. MATCHBOOK_* environment variables
//
// # Fields
//
//   - data_dir / MATCHBOOK_DATA_DIR: directory holding the persisted
//     state slot (default ~/.local/share/matchbook)
//   - quota_bytes / MATCHBOOK_QUOTA_BYTES: storage capacity for the
//     slot (default 5 MiB)
//   - throttle_ms / MATCHBOOK_THROTTLE_MS: resize throttle window
//     (default 250)
//   - user_name, user_phone / MATCHBOOK_USER_NAME, MATCHBOOK_USER_PHONE:
//     identity seeded into a fresh state
//
// Tilde paths are expanded; relative paths are made absolute. A missing
// config file is not an error, but an unreadable or unparsable one is.
package config
