package kv

import (
	"bytes"
	"context"

	"reminder-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the Postgres store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS kv_entries (
	key   BYTEA PRIMARY KEY,
	value BYTEA NOT NULL
)`
	getSQL    = `SELECT value FROM kv_entries WHERE key = $1`
	upsertSQL = `INSERT INTO kv_entries (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	deleteSQL        = `DELETE FROM kv_entries WHERE key = ANY($1)`
	scanBoundedSQL   = `SELECT key, value FROM kv_entries WHERE key >= $1 AND key < $2 ORDER BY key`
	scanUnboundedSQL = `SELECT key, value FROM kv_entries WHERE key >= $1 ORDER BY key`
)

// PostgresStore keeps entries in a single table; BYTEA compares bytewise, so
// encoded key order carries over to ORDER BY key.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, createTableSQL)
	return errs.Wrap(err, "create kv_entries table")
}

func (s *PostgresStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.db.QueryRow(ctx, getSQL, key.Encode()).Scan(&value)
	if errs.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "postgres get")
	}
	return value, true, nil
}

func (s *PostgresStore) SetMany(ctx context.Context, entries []Entry) error {
	for _, e := range entries {
		if err := e.Key.Validate(); err != nil {
			return err
		}
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(upsertSQL, e.Key.Encode(), e.Value)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	return errs.Wrap(err, "postgres set")
}

func (s *PostgresStore) DeleteMany(ctx context.Context, keys []Key) error {
	if len(keys) == 0 {
		return nil
	}
	if err := validateAll(keys); err != nil {
		return err
	}

	encoded := make([][]byte, len(keys))
	for i, k := range keys {
		encoded[i] = k.Encode()
	}
	// a single statement is atomic on its own
	_, err := s.db.Exec(ctx, deleteSQL, encoded)
	return errs.Wrap(err, "postgres delete")
}

func (s *PostgresStore) ScanPrefix(ctx context.Context, prefix Key) ([]Entry, error) {
	start := prefix.Encode()
	return s.scan(ctx, prefix, start, prefixEnd(start))
}

func (s *PostgresStore) ScanRange(ctx context.Context, prefix, upper Key) ([]Entry, error) {
	start := prefix.Encode()
	end := prefixEnd(upper.Encode())
	// keep the scan inside prefix even when upper lies outside it
	if pe := prefixEnd(start); pe != nil && (end == nil || bytes.Compare(pe, end) < 0) {
		end = pe
	}
	return s.scan(ctx, prefix, start, end)
}

func (s *PostgresStore) scan(ctx context.Context, prefix Key, start, end []byte) ([]Entry, error) {
	if err := prefix.Validate(); err != nil {
		return nil, err
	}

	var (
		rows pgx.Rows
		err  error
	)
	if end == nil {
		rows, err = s.db.Query(ctx, scanUnboundedSQL, start)
	} else {
		rows, err = s.db.Query(ctx, scanBoundedSQL, start, end)
	}
	if err != nil {
		return nil, errs.Wrap(err, "postgres scan")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var k, v []byte
		if err := row.Scan(&k, &v); err != nil {
			return Entry{}, err
		}
		key, err := DecodeKey(k)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Key: key, Value: v}, nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "postgres scan rows")
	}
	return entries, nil
}

// Close is a no-op; the pool belongs to the caller.
func (s *PostgresStore) Close() error {
	return nil
}
