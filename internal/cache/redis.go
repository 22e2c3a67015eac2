package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const tagKeyPrefix = "beauty:tag:"
const entryKeyPrefix = "beauty:view:"

// RedisStore backs the revalidation cache with Redis so every replica of
// the web process observes the same invalidations. Failures degrade to a
// cache miss; the page still renders from a fresh API call.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, entryKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("cache read failed")
		}
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, entryKeyPrefix+key, value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagKeyPrefix+tag, key)
		// Tag sets outlive their newest member slightly; stale members are
		// deleted harmlessly on invalidation.
		pipe.Expire(ctx, tagKeyPrefix+tag, ttl+time.Minute)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Msg("cache write failed")
	}
}

func (s *RedisStore) DeleteByTag(ctx context.Context, tag string) {
	keys, err := s.client.SMembers(ctx, tagKeyPrefix+tag).Result()
	if err != nil {
		log.Warn().Err(err).Str("tag", tag).Msg("cache invalidation failed")
		return
	}
	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, entryKeyPrefix+key)
	}
	pipe.Del(ctx, tagKeyPrefix+tag)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Str("tag", tag).Msg("cache invalidation failed")
	}
}

func (s *RedisStore) Flush(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, entryKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		s.client.Del(ctx, keys...)
	}
}
