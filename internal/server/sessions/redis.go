package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
)

// keyPrefix namespaces session keys in a shared Redis instance.
const keyPrefix = "session:"

// RedisStore persists sessions in Redis with a TTL matching the session
// expiry, so stale entries vanish without a janitor.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal error: %w", err)
	}

	ttl := time.Until(session.Expires)
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+session.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("session store error: %w: %v", common.ErrStorage, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*models.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("session store error: %w: %v", common.ErrStorage, err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("session unmarshal error: %w", err)
	}
	session.Token = token

	return session, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session store error: %w: %v", common.ErrStorage, err)
	}
	return nil
}
