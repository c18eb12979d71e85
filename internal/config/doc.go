// Package config loads fitjourney's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fitjourney/config.toml
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are blank or non-positive, use defaults
//
// # TOML Format
//
//	data_dir = "~/.local/share/fitjourney"
//	quota_bytes = 5242880
//
//	[log]
//	file = "~/.local/share/fitjourney/fitjourney.log"
//	level = "info"
//	format = "text"
//
//	[offline]
//	listen = "127.0.0.1:7488"
//	upstream = ""
//	cache_dir = ""
//	cache_size_mb = 16
//
// Every field is optional. Tilde expansion is performed on data_dir, log.file
// and offline.cache_dir. The log file defaults to fitjourney.log inside the
// data directory. An empty offline.upstream means the built-in dashboard is
// served on a loopback port; an empty offline.cache_dir keeps cached assets in
// memory.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and
// invalid TOML, and for a log.format other than text or json. A missing file
// is not an error.
package config
