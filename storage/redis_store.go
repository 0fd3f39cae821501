package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/yeremiapane/restaurant-client/utils"
)

// RedisStore shares one key space between several kiosk devices in the
// same venue. Last writer wins, same as every other backend.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStore) Get(key string) (string, bool) {
	v, err := s.rdb.Get(context.Background(), key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.ErrorLogger.Printf("storage: redis read of %q failed: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(key, value string) error {
	return s.rdb.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Remove(key string) {
	if err := s.rdb.Del(context.Background(), key).Err(); err != nil {
		utils.ErrorLogger.Printf("storage: redis remove of %q failed: %v", key, err)
	}
}
