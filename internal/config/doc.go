// Package config loads and validates the TOML configuration file. The file
// is optional: defaults cover every key, so medialog runs with no config at
// all. Lookup order is an explicit --config path, then
// ~/.config/medialog/config.toml, then medialog.toml in the working
// directory.
package config
