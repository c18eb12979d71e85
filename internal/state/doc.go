// Package state holds the live fitness log and applies user actions to it.
//
// Store is the single owner of the current journal snapshot. Every action
// (adding a weight, logging pushups, removing a meal) builds a fresh snapshot
// from the previous one and swaps it in under a lock, so readers holding an
// older Snapshot never observe a change. Invalid submissions are ignored and
// reported with ok=false.
//
// When a Saver is configured, each new snapshot is handed to a background
// writer through a one-slot mailbox. Mutations never wait on storage: if the
// writer is still busy, the pending snapshot is replaced by the newer one.
// Close flushes the last snapshot and stops the writer.
package state
