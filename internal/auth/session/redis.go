package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys: auth:refresh:{principalID}.
const keyPrefix = "auth:refresh:"

// replaceScript swaps the stored hash only when it still equals the
// expected previous value. GET, compare, and SETEX run server-side as
// one atomic unit, so two concurrent rotations cannot both win.
var replaceScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == false then
  return 0
end
if current ~= ARGV[1] then
  return 1
end
redis.call("SETEX", KEYS[1], tonumber(ARGV[3]), ARGV[2])
return 2
`)

const (
	replaceStatusMissing int64 = 0
	replaceStatusChanged int64 = 1
	replaceStatusSwapped int64 = 2
)

// RedisStore implements Store on a Redis instance. Expiry is native:
// SETEX bounds every record's lifetime and the store itself reports
// expired keys as absent, no application-side check needed.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(principalID string) string {
	return keyPrefix + principalID
}

func (s *RedisStore) Set(ctx context.Context, principalID, refreshHash string, ttlSeconds int64) error {
	err := s.client.Set(ctx, s.key(principalID), refreshHash,
		time.Duration(ttlSeconds)*time.Second).Err()
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, principalID string) (string, error) {
	value, err := s.client.Get(ctx, s.key(principalID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", unavailable(err)
	}
	return value, nil
}

func (s *RedisStore) Delete(ctx context.Context, principalID string) error {
	if err := s.client.Del(ctx, s.key(principalID)).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, principalID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(principalID)).Result()
	if err != nil {
		return false, unavailable(err)
	}
	return n == 1, nil
}

func (s *RedisStore) Replace(ctx context.Context, principalID, previousHash, newHash string, ttlSeconds int64) error {
	status, err := replaceScript.Run(ctx, s.client,
		[]string{s.key(principalID)},
		previousHash, newHash, ttlSeconds).Int64()
	if err != nil {
		return unavailable(err)
	}

	// A missing record and a changed record both reject the swap: the
	// entity backend cannot tell them apart either, and the contract
	// keeps the backends identical.
	if status != replaceStatusSwapped {
		return ErrConflict
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
