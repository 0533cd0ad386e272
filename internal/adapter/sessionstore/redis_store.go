package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"builder_estimates/internal/domain/session"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "session:"

// RedisClient is the subset of redis.Cmdable the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ RedisClient = (*redis.Client)(nil)

// RedisStore keeps session data as JSON strings with a TTL. A payload that no
// longer decodes is logged and treated as missing so the visitor starts over.
type RedisStore struct {
	rdb    RedisClient
	prefix string
	log    *logger.Logger
}

var _ interfaces.ISessionStore = (*RedisStore)(nil)

func NewRedisStore(rdb RedisClient, prefix string, log *logger.Logger) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RedisStore{rdb: rdb, prefix: prefix, log: log.With("component", "RedisSessionStore")}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (session.Data, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Data{}, false, nil
		}
		return session.Data{}, false, fmt.Errorf("redis get session: %w", err)
	}

	var data session.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn("discarding undecodable session", "session_id", id, "error", err)
		return session.Data{}, false, nil
	}
	return data, true, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, data session.Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
