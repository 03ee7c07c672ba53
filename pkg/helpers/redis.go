package helpers

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisBlobSource reads the recommender blob stored under a single key by the
// offline model pipeline.
type RedisBlobSource struct {
	RDB *redis.Client
	Key string
}

func NewRedisBlobSource(rdb *redis.Client, key string) *RedisBlobSource {
	return &RedisBlobSource{RDB: rdb, Key: key}
}

func (s *RedisBlobSource) Load(ctx context.Context) ([]byte, error) {
	b, err := s.RDB.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

var _ service.BlobSource = (*RedisBlobSource)(nil)
