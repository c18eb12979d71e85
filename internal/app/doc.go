// Package app is the composition root for fitjourney.
//
// Every command starts the same way: load the TOML config, install the logrus
// logger, and open the data directory behind a storage.Adapter. From there:
//
//   - Run starts the TUI on a state.Store whose writer goroutine saves each
//     new snapshot through the adapter
//   - Serve starts the offline cache proxy, using the built-in dashboard on
//     a loopback port as its origin unless an upstream is configured
//   - Demo, Clear and Summary are one-shot commands for scripts
//
// Startup failures (bad config, unusable data dir, busy listen address) are
// returned. Storage failures after startup are logged and never returned; the
// in-memory state stays authoritative.
package app
