package memstore

import (
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/golang-cafe/company-directory/internal/storage"
)

// Store is an in-process storage.Store backed by bigcache. It is the
// default for dev mode and tests; nothing survives a restart.
type Store struct {
	cache *bigcache.BigCache
}

func New() (*Store, error) {
	cfg := bigcache.DefaultConfig(24 * time.Hour)
	cfg.CleanWindow = 0
	cache, err := bigcache.NewBigCache(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

func (s *Store) Get(key string) (string, error) {
	v, err := s.cache.Get(key)
	if err == bigcache.ErrEntryNotFound {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) Set(key, value string) error {
	return s.cache.Set(key, []byte(value))
}
