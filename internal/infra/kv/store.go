// Package kv is an ordered key-value store over tuple keys. Writes of several
// entries commit atomically, and scans return entries in ascending key order.
package kv

import "context"

type Entry struct {
	Key   Key
	Value []byte
}

type Store interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key Key) (value []byte, ok bool, err error)
	SetMany(ctx context.Context, entries []Entry) error
	// DeleteMany removes all keys in one commit. Absent keys are ignored.
	DeleteMany(ctx context.Context, keys []Key) error
	ScanPrefix(ctx context.Context, prefix Key) ([]Entry, error)
	// ScanRange returns entries from prefix up to and including upper and any
	// key that extends upper.
	ScanRange(ctx context.Context, prefix, upper Key) ([]Entry, error)
	Close() error
}
