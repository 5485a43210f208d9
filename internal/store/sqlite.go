package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/migrations"
)

// DB wraps the raw database handle so that migration and query helpers can
// hang off one type.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (and creates, if missing) the SQLite database file
// at path and verifies the connection with a ping.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := createDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("path", path).Msg("error creating database file")
		return nil, fmt.Errorf("create database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("error opening database")
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", path).Msg("error pinging database")
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Debug().Str("path", path).Msg("connected to session database")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		return f.Close()
	}

	return nil
}

type sqliteStore struct {
	db     *DB
	sq     sq.StatementBuilderType
	logger *logger.Logger
}

// NewSQLiteStore returns a [SessionStore] backed by the session_records table
// of db.
func NewSQLiteStore(db *DB, log *logger.Logger) SessionStore {
	return &sqliteStore{
		db:     db,
		sq:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: log,
	}
}

func (s *sqliteStore) Get(key string) ([]byte, bool) {
	query, args, err := s.sq.
		Select("value").
		From("session_records").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to build session record query")
		return nil, false
	}

	var value []byte
	err = s.db.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Err(err).Str("key", key).Msg("failed to read session record")
		}
		return nil, false
	}

	return value, true
}

func (s *sqliteStore) Set(key string, value []byte) {
	query, args, err := s.sq.
		Insert("session_records").
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to build session record upsert")
		return
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to write session record")
	}
}

func (s *sqliteStore) Remove(key string) {
	query, args, err := s.sq.
		Delete("session_records").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to build session record delete")
		return
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to delete session record")
	}
}
