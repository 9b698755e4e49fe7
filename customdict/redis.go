package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps lines in a Redis set.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedis wraps client. Close closes the client.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: Key}
}

func (s *RedisStore) Add(ctx context.Context, line string) error {
	line, err := Validate(line)
	if err != nil {
		return err
	}
	return s.client.SAdd(ctx, s.key, line).Err()
}

func (s *RedisStore) Remove(ctx context.Context, line string) error {
	return s.client.SRem(ctx, s.key, trim(line)).Err()
}

func (s *RedisStore) All(ctx context.Context) ([]string, error) {
	lines, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	return sorted(lines), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
