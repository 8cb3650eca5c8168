package kvstore

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v9"

	"github.com/selfjournal/journal-api/pkg/register"
)

func init() {
	register.RegisterFunc[*Registry](RegisterKey{}, func(r *Registry) {
		r.Register(DRIVER_REDIS, func(cfg Config) (Store, error) {
			return NewRedisStore(cfg.Redis), nil
		})
	})
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (c *RedisConfig) FromENV() {
	c.Addr = os.Getenv("JOURNAL_API_STORE_REDIS_ADDR")
	c.Password = os.Getenv("JOURNAL_API_STORE_REDIS_PASSWORD")
	c.DB, _ = strconv.Atoi(os.Getenv("JOURNAL_API_STORE_REDIS_DB"))
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// journal slots never expire
	return s.client.Set(ctx, key, value, 0).Err()
}
