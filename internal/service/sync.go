package service

import (
	"context"
	"io"

	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/schema"
)

// Sync executes every operation inline on the caller's goroutine.
type Sync struct {
	ops *ops
}

var _ Service = (*Sync)(nil)

func (s *Sync) CreateAromaTrack(ctx context.Context, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	return s.ops.createTrack(ctx, in)
}

func (s *Sync) GetAromaTrack(ctx context.Context, id int) (*model.AromaTrack, error) {
	return s.ops.getTrack(ctx, id)
}

func (s *Sync) ListAromaTracks(ctx context.Context) ([]*model.AromaTrack, error) {
	return s.ops.listTracks(ctx)
}

func (s *Sync) UpdateAromaTrack(ctx context.Context, id int, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	return s.ops.updateTrack(ctx, id, in)
}

func (s *Sync) DeleteAromaTrack(ctx context.Context, id int) error {
	return s.ops.deleteTrack(ctx, id)
}

func (s *Sync) CreateAromaBlock(ctx context.Context, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	return s.ops.createBlock(ctx, in)
}

func (s *Sync) GetAromaBlock(ctx context.Context, id int) (*model.AromaBlock, error) {
	return s.ops.getBlock(ctx, id)
}

func (s *Sync) ListAromaBlocks(ctx context.Context, trackID int) ([]*model.AromaBlock, error) {
	return s.ops.listBlocks(ctx, trackID)
}

func (s *Sync) UpdateAromaBlock(ctx context.Context, id int, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	return s.ops.updateBlock(ctx, id, in)
}

func (s *Sync) DeleteAromaBlock(ctx context.Context, id int) error {
	return s.ops.deleteBlock(ctx, id)
}

func (s *Sync) GetCartridge(ctx context.Context, id int) (*model.Cartridge, error) {
	return s.ops.getCartridge(ctx, id)
}

func (s *Sync) GetAllCartridges(ctx context.Context) ([]*model.Cartridge, error) {
	return s.ops.listCartridges(ctx)
}

func (s *Sync) SetupSchema(ctx context.Context, dropFirst bool) error {
	return s.ops.setupSchema(ctx, dropFirst)
}

func (s *Sync) TableNames(ctx context.Context) ([]string, error) {
	return s.ops.tableNames(ctx)
}

func (s *Sync) DatabaseOverview(ctx context.Context, w io.Writer, previewRows int, headersOnly bool) error {
	return s.ops.databaseOverview(ctx, w, previewRows, headersOnly)
}

func (s *Sync) CreateReadOnlyUser(ctx context.Context, username, password string) error {
	return s.ops.createReadOnlyUser(ctx, username, password)
}

func (s *Sync) Close() error {
	return s.ops.close()
}
