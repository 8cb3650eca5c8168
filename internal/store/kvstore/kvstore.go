package kvstore

import (
	"context"
	"fmt"
	"os"

	"github.com/selfjournal/journal-api/pkg/register"
)

// Store is a process-external key-value slot. Get reports whether the key
// exists; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

const (
	DRIVER_FILE     = "file"
	DRIVER_MEMORY   = "memory"
	DRIVER_POSTGRES = "postgres"
	DRIVER_REDIS    = "redis"
)

type Config struct {
	Driver   string         `toml:"driver"`
	File     FileConfig     `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

func (c *Config) FromENV() {
	c.Driver = os.Getenv("JOURNAL_API_STORE_DRIVER")
	if c.Driver == "" {
		c.Driver = DRIVER_FILE
	}
	c.File.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
}

type RegisterKey struct{}

type Builder func(cfg Config) (Store, error)

// Registry collects the drivers compiled into this binary. Backends register
// themselves through pkg/register in their init funcs.
type Registry struct {
	builders map[string]Builder
}

func (r *Registry) Register(driver string, b Builder) {
	r.builders[driver] = b
}

func MustSetup(cfg Config) Store {
	r := &Registry{builders: make(map[string]Builder)}
	for _, f := range register.ResolveFuncHandlers[*Registry](RegisterKey{}) {
		f(r)
	}

	b, ok := r.builders[cfg.Driver]
	if !ok {
		panic(fmt.Sprintf("kvstore: unknown driver %q", cfg.Driver))
	}

	s, err := b(cfg)
	if err != nil {
		panic(fmt.Sprintf("kvstore: setup %q driver: %v", cfg.Driver, err))
	}
	return s
}
