// Package postgres implements the store.Store interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/store"
)

// PostgresStore implements store.Store backed by a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL and
// configures the connection pool. It does not create or migrate the schema;
// that is an explicit operation (CreateSchema) so that read-only callers
// never mutate the database by accident.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", &store.ConnectionError{Err: err})
	}

	return &PostgresStore{db: db}, nil
}

// NewFromDB wraps an existing database handle. Used by tests.
func NewFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateTrack(ctx context.Context, track *model.AromaTrack) error {
	return mapError(queryCreateTrack(ctx, s.db, track))
}

func (s *PostgresStore) GetTrack(ctx context.Context, id int) (*model.AromaTrack, error) {
	t, err := queryGetTrack(ctx, s.db, id)
	return t, mapError(err)
}

func (s *PostgresStore) ListTracks(ctx context.Context) ([]*model.AromaTrack, error) {
	ts, err := queryListTracks(ctx, s.db)
	return ts, mapError(err)
}

func (s *PostgresStore) UpdateTrack(ctx context.Context, track *model.AromaTrack) error {
	return mapError(queryUpdateTrack(ctx, s.db, track))
}

func (s *PostgresStore) DeleteTrack(ctx context.Context, id int) error {
	return mapError(queryDeleteTrack(ctx, s.db, id))
}

func (s *PostgresStore) CreateBlock(ctx context.Context, block *model.AromaBlock) error {
	return mapError(queryCreateBlock(ctx, s.db, block))
}

func (s *PostgresStore) GetBlock(ctx context.Context, id int) (*model.AromaBlock, error) {
	b, err := queryGetBlock(ctx, s.db, id)
	return b, mapError(err)
}

func (s *PostgresStore) ListBlocks(ctx context.Context, filter store.BlockFilter) ([]*model.AromaBlock, error) {
	bs, err := queryListBlocks(ctx, s.db, filter)
	return bs, mapError(err)
}

func (s *PostgresStore) UpdateBlock(ctx context.Context, block *model.AromaBlock) error {
	return mapError(queryUpdateBlock(ctx, s.db, block))
}

func (s *PostgresStore) DeleteBlock(ctx context.Context, id int) error {
	return mapError(queryDeleteBlock(ctx, s.db, id))
}

func (s *PostgresStore) GetCartridge(ctx context.Context, id int) (*model.Cartridge, error) {
	c, err := queryGetCartridge(ctx, s.db, id)
	return c, mapError(err)
}

func (s *PostgresStore) ListCartridges(ctx context.Context) ([]*model.Cartridge, error) {
	cs, err := queryListCartridges(ctx, s.db)
	return cs, mapError(err)
}

func (s *PostgresStore) CreateSchema(ctx context.Context, dropFirst bool) error {
	return createSchema(s.db, dropFirst)
}

func (s *PostgresStore) TableNames(ctx context.Context) ([]string, error) {
	names, err := queryTableNames(ctx, s.db)
	return names, mapError(err)
}

func (s *PostgresStore) PreviewTable(ctx context.Context, table string, limit int) (*store.TablePreview, error) {
	p, err := queryPreviewTable(ctx, s.db, table, limit)
	return p, mapError(err)
}

func (s *PostgresStore) CreateReadOnlyUser(ctx context.Context, username, password string) error {
	return mapError(queryCreateReadOnlyUser(ctx, s.db, username, password))
}

// RunInTransaction begins a database transaction, creates a txStore that
// delegates to it, calls fn, and commits on success or rolls back on error.
func (s *PostgresStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapError(err))
	}

	txS := &txStore{tx: tx}
	if err := fn(txS); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}
	return nil
}

// txStore implements store.Store using a *sql.Tx.
type txStore struct {
	tx *sql.Tx
}

// Compile-time check that txStore implements store.Store.
var _ store.Store = (*txStore)(nil)

func (s *txStore) CreateTrack(ctx context.Context, track *model.AromaTrack) error {
	return mapError(queryCreateTrack(ctx, s.tx, track))
}

func (s *txStore) GetTrack(ctx context.Context, id int) (*model.AromaTrack, error) {
	t, err := queryGetTrack(ctx, s.tx, id)
	return t, mapError(err)
}

func (s *txStore) ListTracks(ctx context.Context) ([]*model.AromaTrack, error) {
	ts, err := queryListTracks(ctx, s.tx)
	return ts, mapError(err)
}

func (s *txStore) UpdateTrack(ctx context.Context, track *model.AromaTrack) error {
	return mapError(queryUpdateTrack(ctx, s.tx, track))
}

func (s *txStore) DeleteTrack(ctx context.Context, id int) error {
	return mapError(queryDeleteTrack(ctx, s.tx, id))
}

func (s *txStore) CreateBlock(ctx context.Context, block *model.AromaBlock) error {
	return mapError(queryCreateBlock(ctx, s.tx, block))
}

func (s *txStore) GetBlock(ctx context.Context, id int) (*model.AromaBlock, error) {
	b, err := queryGetBlock(ctx, s.tx, id)
	return b, mapError(err)
}

func (s *txStore) ListBlocks(ctx context.Context, filter store.BlockFilter) ([]*model.AromaBlock, error) {
	bs, err := queryListBlocks(ctx, s.tx, filter)
	return bs, mapError(err)
}

func (s *txStore) UpdateBlock(ctx context.Context, block *model.AromaBlock) error {
	return mapError(queryUpdateBlock(ctx, s.tx, block))
}

func (s *txStore) DeleteBlock(ctx context.Context, id int) error {
	return mapError(queryDeleteBlock(ctx, s.tx, id))
}

func (s *txStore) GetCartridge(ctx context.Context, id int) (*model.Cartridge, error) {
	c, err := queryGetCartridge(ctx, s.tx, id)
	return c, mapError(err)
}

func (s *txStore) ListCartridges(ctx context.Context) ([]*model.Cartridge, error) {
	cs, err := queryListCartridges(ctx, s.tx)
	return cs, mapError(err)
}

// CreateSchema is not available inside a transaction; migrations manage
// their own transaction boundaries.
func (s *txStore) CreateSchema(ctx context.Context, dropFirst bool) error {
	return fmt.Errorf("create schema inside a transaction: not supported")
}

func (s *txStore) TableNames(ctx context.Context) ([]string, error) {
	names, err := queryTableNames(ctx, s.tx)
	return names, mapError(err)
}

func (s *txStore) PreviewTable(ctx context.Context, table string, limit int) (*store.TablePreview, error) {
	p, err := queryPreviewTable(ctx, s.tx, table, limit)
	return p, mapError(err)
}

func (s *txStore) CreateReadOnlyUser(ctx context.Context, username, password string) error {
	return mapError(queryCreateReadOnlyUser(ctx, s.tx, username, password))
}

// RunInTransaction on a txStore reuses the existing transaction (no nesting).
func (s *txStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

// Close is a no-op for a transaction store; the parent store owns the connection.
func (s *txStore) Close() error {
	return nil
}
