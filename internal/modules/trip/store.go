// README: Trip session store backed by Redis (JSON values with a sliding TTL).
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bettercommute/internal/types"
)

const sessionKeyPrefix = "trip:session:%s"

// SessionStore persists trip sessions between requests. *Store satisfies it.
type SessionStore interface {
	Load(ctx context.Context, userID types.ID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context, userID types.ID) error
}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Load returns the user's session, or nil when none exists (expired or never
// started). There is at most one session per user.
func (s *Store) Load(ctx context.Context, userID types.ID) (*Session, error) {
	val, err := s.redis.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save writes the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sessionKey(sess.UserID), payload, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, userID types.ID) error {
	return s.redis.Del(ctx, sessionKey(userID)).Err()
}

func sessionKey(userID types.ID) string {
	return fmt.Sprintf(sessionKeyPrefix, string(userID))
}
