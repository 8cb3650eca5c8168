package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/selfjournal/journal-api/pkg/register"
)

func init() {
	register.RegisterFunc[*Registry](RegisterKey{}, func(r *Registry) {
		r.Register(DRIVER_FILE, func(cfg Config) (Store, error) {
			return NewFileStore(cfg.File.Dir)
		})
	})
}

type FileConfig struct {
	Dir string `toml:"dir"`
}

func (c *FileConfig) FromENV() {
	c.Dir = os.Getenv("JOURNAL_API_STORE_FILE_DIR")
}

// FileStore keeps one file per key under a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = filepath.Join(".", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// keys are fixed identifiers, but never trust them as paths
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(raw), true, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
