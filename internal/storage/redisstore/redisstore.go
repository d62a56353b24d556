package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/golang-cafe/company-directory/internal/storage"
)

// Store is a storage.Store backed by redis GET/SET. This is the adapter to
// use when several processes share the directory: redis gives the same
// last-writer-wins semantics as any other Store, just across machines.
type Store struct {
	client *redis.Client
}

// New parses redisURL and verifies connectivity.
func New(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(key string) (string, error) {
	v, err := s.client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}
