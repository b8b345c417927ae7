package library

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// RedisStore keeps the state blob under a single Redis string key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to addr and verifies the connection with PING.
// An empty key means DefaultStoreKey.
func NewRedisStore(addr, key string) (*RedisStore, error) {
	if key == "" {
		key = DefaultStoreKey
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Load() (*LibraryData, error) {
	blob, err := s.client.Get(s.key).Bytes()
	if err == redis.Nil {
		return NewLibraryData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeData(blob), nil
}

func (s *RedisStore) Save(data *LibraryData) error {
	blob, err := encodeData(data)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.client.Set(s.key, blob, 0).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.client.Del(s.key).Err(); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
