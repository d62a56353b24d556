package storage

import "errors"

// ErrKeyNotFound is returned by Get when no value exists for the given key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a flat string to string key value store. A value is read or
// written in full and there are no multi-key transactions: when two
// processes write the same key the last writer wins. Callers own the
// ordering of multi-key updates.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
