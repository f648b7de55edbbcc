// Package service exposes the aroma-data operations behind a single Service
// interface with two interchangeable implementations: Sync executes calls
// inline on the caller's goroutine, Async funnels them through one dispatch
// goroutine so callers never contend on the database connection directly.
// Both share the same validation, transaction, and event-publishing core,
// so results are identical regardless of the variant in use.
package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/smellerlabs/aromadb/internal/config"
	"github.com/smellerlabs/aromadb/internal/events"
	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/schema"
	"github.com/smellerlabs/aromadb/internal/store"
)

// Service is the application-facing surface for aroma data.
//
// Write operations validate their input before touching the store and
// return *schema.ValidationError without side effects when the input is
// invalid. Lookups of absent rows return store.ErrNotFound.
type Service interface {
	// Tracks
	CreateAromaTrack(ctx context.Context, in schema.AromaTrackCreate) (*model.AromaTrack, error)
	// GetAromaTrack returns the track with its blocks populated, ordered
	// by start time.
	GetAromaTrack(ctx context.Context, id int) (*model.AromaTrack, error)
	ListAromaTracks(ctx context.Context) ([]*model.AromaTrack, error)
	UpdateAromaTrack(ctx context.Context, id int, in schema.AromaTrackCreate) (*model.AromaTrack, error)
	// DeleteAromaTrack removes the track and every block it owns.
	DeleteAromaTrack(ctx context.Context, id int) error

	// Blocks
	CreateAromaBlock(ctx context.Context, in schema.AromaBlockCreate) (*model.AromaBlock, error)
	GetAromaBlock(ctx context.Context, id int) (*model.AromaBlock, error)
	// ListAromaBlocks lists blocks for one track, or all blocks when
	// trackID is zero.
	ListAromaBlocks(ctx context.Context, trackID int) ([]*model.AromaBlock, error)
	UpdateAromaBlock(ctx context.Context, id int, in schema.AromaBlockCreate) (*model.AromaBlock, error)
	DeleteAromaBlock(ctx context.Context, id int) error

	// Cartridges
	GetCartridge(ctx context.Context, id int) (*model.Cartridge, error)
	GetAllCartridges(ctx context.Context) ([]*model.Cartridge, error)

	// SetupSchema creates all storage structures, optionally dropping the
	// existing ones first. Safe to call repeatedly.
	SetupSchema(ctx context.Context, dropFirst bool) error

	// Introspection
	TableNames(ctx context.Context) ([]string, error)
	// DatabaseOverview writes a human-readable summary of every table to w:
	// the table name, its column headers, and up to previewRows sample rows
	// (none when headersOnly is set).
	DatabaseOverview(ctx context.Context, w io.Writer, previewRows int, headersOnly bool) error

	CreateReadOnlyUser(ctx context.Context, username, password string) error

	// Close releases the service and its underlying store and publisher.
	// For the async variant it first waits for in-flight work to finish.
	Close() error
}

// New builds the service variant selected by cfg.Async. A nil publisher
// disables change events; a nil logger falls back to slog.Default.
func New(cfg *config.Config, s store.Store, pub events.Publisher, logger *slog.Logger) Service {
	if pub == nil {
		pub = &events.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	o := &ops{store: s, pub: pub, log: logger}
	if cfg != nil && cfg.Async {
		return newAsync(o)
	}
	return &Sync{ops: o}
}
