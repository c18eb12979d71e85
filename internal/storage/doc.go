// Package storage persists journal snapshots.
//
// KV is the on-device primitive: a synchronous string-keyed store. FileKV keeps
// one file per key with atomic replacement and an optional byte quota, which
// mimics a browser's per-origin storage limit. MemoryKV backs tests and
// ephemeral runs.
//
// Adapter serializes the whole snapshot under one versioned key. Loading never
// fails: anything unusable degrades to an empty log. Saving never returns an
// error either; failures are logged and the in-memory state stays
// authoritative until a later write succeeds.
package storage
