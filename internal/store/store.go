// Package store defines the persistence interface for aroma data and the
// error taxonomy surfaced by its implementations.
package store

import (
	"context"

	"github.com/smellerlabs/aromadb/internal/model"
)

// BlockFilter narrows ListBlocks results.
type BlockFilter struct {
	// TrackID restricts the listing to blocks owned by one track.
	// Zero means all tracks.
	TrackID int
}

// TablePreview is a bounded sample of a table's contents, with every value
// rendered as text. Used by the database overview only.
type TablePreview struct {
	Headers []string
	Rows    [][]string
}

// Store defines the persistence interface for aroma data.
//
// Reads reflect the store's committed state at call time; there is no
// in-process caching. Get returns ErrNotFound for an absent identity, List
// returns an empty slice. Constraint violations surface as *ConstraintError
// and an unreachable database as *ConnectionError. No operation retries.
type Store interface {
	// Tracks
	CreateTrack(ctx context.Context, track *model.AromaTrack) error
	GetTrack(ctx context.Context, id int) (*model.AromaTrack, error)
	ListTracks(ctx context.Context) ([]*model.AromaTrack, error)
	UpdateTrack(ctx context.Context, track *model.AromaTrack) error
	// DeleteTrack removes the track and, through the ownership relation,
	// every block it owns.
	DeleteTrack(ctx context.Context, id int) error

	// Blocks
	CreateBlock(ctx context.Context, block *model.AromaBlock) error
	GetBlock(ctx context.Context, id int) (*model.AromaBlock, error)
	ListBlocks(ctx context.Context, filter BlockFilter) ([]*model.AromaBlock, error)
	UpdateBlock(ctx context.Context, block *model.AromaBlock) error
	DeleteBlock(ctx context.Context, id int) error

	// Cartridges (read-only reference data)
	GetCartridge(ctx context.Context, id int) (*model.Cartridge, error)
	ListCartridges(ctx context.Context) ([]*model.Cartridge, error)

	// CreateSchema idempotently creates all storage structures. When
	// dropFirst is true it destroys the existing structures first, which
	// is irreversible.
	CreateSchema(ctx context.Context, dropFirst bool) error

	// Introspection, used by the database overview.
	TableNames(ctx context.Context) ([]string, error)
	PreviewTable(ctx context.Context, table string, limit int) (*TablePreview, error)

	// CreateReadOnlyUser creates a database role with SELECT-only access.
	CreateReadOnlyUser(ctx context.Context, username, password string) error

	// RunInTransaction runs fn against a transactional view of the store,
	// committing on success and rolling back on error.
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error

	// Lifecycle
	Close() error
}
