package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tweetshot/internal/domain"
)

// Key prefixes. The image endpoint reads image:<id>; tweet:<id> carries the
// structured metadata persisted alongside it.
const (
	imageKeyPrefix = "image:"
	tweetKeyPrefix = "tweet:"
)

// RedisStore persists images and descriptions in Redis with a fixed expiry.
// Images are stored base64-encoded, descriptions as JSON.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store on top of an existing Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient builds a Redis client from a URL ("redis://..." for cloud
// providers) or a plain host:port address for local development.
func NewRedisClient(url, addr, password string, db int) (*redis.Client, error) {
	if url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opts), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), nil
}

// SetImage stores PNG bytes base64-encoded under image:<id> with the TTL.
func (s *RedisStore) SetImage(ctx context.Context, id string, png []byte) error {
	encoded := base64.StdEncoding.EncodeToString(png)
	return s.client.Set(ctx, imageKeyPrefix+id, encoded, s.ttl).Err()
}

// GetImage retrieves and decodes PNG bytes by image ID.
func (s *RedisStore) GetImage(ctx context.Context, id string) ([]byte, error) {
	encoded, err := s.client.Get(ctx, imageKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get image: %w", err)
	}

	png, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode stored image: %w", err)
	}
	return png, nil
}

// SetDescription stores the description as JSON under tweet:<id> with the TTL.
func (s *RedisStore) SetDescription(ctx context.Context, id string, desc domain.TweetDescription) error {
	data, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("marshal description: %w", err)
	}
	return s.client.Set(ctx, tweetKeyPrefix+id, data, s.ttl).Err()
}

// GetDescription retrieves the description by image ID.
func (s *RedisStore) GetDescription(ctx context.Context, id string) (domain.TweetDescription, error) {
	data, err := s.client.Get(ctx, tweetKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TweetDescription{}, domain.ErrImageNotFound
	}
	if err != nil {
		return domain.TweetDescription{}, fmt.Errorf("redis get description: %w", err)
	}

	var desc domain.TweetDescription
	if err := json.Unmarshal(data, &desc); err != nil {
		return domain.TweetDescription{}, fmt.Errorf("unmarshal description: %w", err)
	}
	return desc, nil
}
