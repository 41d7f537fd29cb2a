// Package config loads tabnav's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tabnav/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tabnav/config.toml
//   - Start route: empty (open the last used tab)
//   - Log file: ~/.local/state/tabnav/tabnav.log
//   - Log level: info
//   - Friends: a small built-in directory of names
//
// # TOML Format
//
//	start_route = "profile?name=Ada"
//	log_path = "~/.local/state/tabnav/tabnav.log"
//	log_level = "debug"
//	friends = ["Ada", "Grace", "Linus"]
//
// All fields are optional. Tilde expansion is performed on log_path. An
// explicit empty friends list leaves the directory empty.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors, and unknown log levels. The start
// route is not validated here; it is resolved against the navigation graph
// at startup.
package config
