package kvstore

import (
	"context"
	"database/sql"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/selfjournal/journal-api/pkg/register"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	register.RegisterFunc[*Registry](RegisterKey{}, func(r *Registry) {
		r.Register(DRIVER_POSTGRES, func(cfg Config) (Store, error) {
			return NewPostgresStore(cfg.Postgres)
		})
	})
}

type PostgresConfig struct {
	DSN string `toml:"dsn"`
}

func (c *PostgresConfig) FromENV() {
	c.DSN = os.Getenv("JOURNAL_API_STORE_POSTGRESQL_DSN")
}

const TABLE_JOURNAL_KV = "journal_kv"

const createJournalKVTable = `CREATE TABLE IF NOT EXISTS ` + TABLE_JOURNAL_KV + ` (
	slot_key   TEXT PRIMARY KEY,
	slot_value TEXT NOT NULL,
	updated_at BIGINT NOT NULL
)`

// PostgresStore maps the storage slot onto a two-column table.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(createJournalKVTable); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := sq.Select("slot_value").From(TABLE_JOURNAL_KV).Where(sq.Eq{"slot_key": key})

	queryString, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err = s.db.GetContext(ctx, &value, queryString, args...); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := sq.Insert(TABLE_JOURNAL_KV).
		Columns("slot_key", "slot_value", "updated_at").
		Values(key, value, time.Now().Unix()).
		Suffix("ON CONFLICT (slot_key) DO UPDATE SET slot_value = EXCLUDED.slot_value, updated_at = EXCLUDED.updated_at")

	queryString, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, queryString, args...)
	return err
}
