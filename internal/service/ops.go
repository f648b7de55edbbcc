package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/smellerlabs/aromadb/internal/events"
	"github.com/smellerlabs/aromadb/internal/idgen"
	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/schema"
	"github.com/smellerlabs/aromadb/internal/store"
)

// ops holds the shared operation core. Sync and Async both delegate here,
// so the two variants cannot drift in behavior.
type ops struct {
	store store.Store
	pub   events.Publisher
	log   *slog.Logger
}

func (o *ops) createTrack(ctx context.Context, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	track := &model.AromaTrack{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := o.store.CreateTrack(ctx, track); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TopicTrackCreated, events.TrackCreated{Track: track})
	return track, nil
}

func (o *ops) getTrack(ctx context.Context, id int) (*model.AromaTrack, error) {
	var track *model.AromaTrack
	err := o.store.RunInTransaction(ctx, func(tx store.Store) error {
		t, err := tx.GetTrack(ctx, id)
		if err != nil {
			return err
		}
		blocks, err := tx.ListBlocks(ctx, store.BlockFilter{TrackID: id})
		if err != nil {
			return err
		}
		t.Blocks = blocks
		track = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return track, nil
}

func (o *ops) listTracks(ctx context.Context) ([]*model.AromaTrack, error) {
	return o.store.ListTracks(ctx)
}

func (o *ops) updateTrack(ctx context.Context, id int, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	track := &model.AromaTrack{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := o.store.UpdateTrack(ctx, track); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TopicTrackUpdated, events.TrackUpdated{Track: track})
	return track, nil
}

func (o *ops) deleteTrack(ctx context.Context, id int) error {
	if err := o.store.DeleteTrack(ctx, id); err != nil {
		return err
	}
	o.publish(ctx, events.TopicTrackDeleted, events.TrackDeleted{TrackID: id})
	return nil
}

func (o *ops) createBlock(ctx context.Context, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	block := &model.AromaBlock{
		Name:        in.Name,
		Description: in.Description,
		DataType:    in.DataType,
		ContentLink: in.ContentLink,
		Channels:    in.Channels,
		StartTime:   in.StartTime,
		StopTime:    in.StopTime,
		TrackID:     in.TrackID,
	}

	// The owning track must exist at commit time, so the existence check
	// and the insert share one transaction.
	err := o.store.RunInTransaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetTrack(ctx, in.TrackID); err != nil {
			return err
		}
		return tx.CreateBlock(ctx, block)
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, events.TopicBlockCreated, events.BlockCreated{Block: block})
	return block, nil
}

func (o *ops) getBlock(ctx context.Context, id int) (*model.AromaBlock, error) {
	return o.store.GetBlock(ctx, id)
}

func (o *ops) listBlocks(ctx context.Context, trackID int) ([]*model.AromaBlock, error) {
	return o.store.ListBlocks(ctx, store.BlockFilter{TrackID: trackID})
}

func (o *ops) updateBlock(ctx context.Context, id int, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	block := &model.AromaBlock{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		DataType:    in.DataType,
		ContentLink: in.ContentLink,
		Channels:    in.Channels,
		StartTime:   in.StartTime,
		StopTime:    in.StopTime,
		TrackID:     in.TrackID,
	}

	err := o.store.RunInTransaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetTrack(ctx, in.TrackID); err != nil {
			return err
		}
		return tx.UpdateBlock(ctx, block)
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, events.TopicBlockUpdated, events.BlockUpdated{Block: block})
	return block, nil
}

func (o *ops) deleteBlock(ctx context.Context, id int) error {
	// Fetch first so the deletion event can carry the owning track.
	var trackID int
	err := o.store.RunInTransaction(ctx, func(tx store.Store) error {
		b, err := tx.GetBlock(ctx, id)
		if err != nil {
			return err
		}
		trackID = b.TrackID
		return tx.DeleteBlock(ctx, id)
	})
	if err != nil {
		return err
	}

	o.publish(ctx, events.TopicBlockDeleted, events.BlockDeleted{BlockID: id, TrackID: trackID})
	return nil
}

func (o *ops) getCartridge(ctx context.Context, id int) (*model.Cartridge, error) {
	return o.store.GetCartridge(ctx, id)
}

func (o *ops) listCartridges(ctx context.Context) ([]*model.Cartridge, error) {
	return o.store.ListCartridges(ctx)
}

func (o *ops) setupSchema(ctx context.Context, dropFirst bool) error {
	return o.store.CreateSchema(ctx, dropFirst)
}

func (o *ops) tableNames(ctx context.Context) ([]string, error) {
	return o.store.TableNames(ctx)
}

func (o *ops) createReadOnlyUser(ctx context.Context, username, password string) error {
	var ve schema.ValidationError
	if !validUsername(username) {
		ve.Errors = append(ve.Errors, schema.FieldError{
			Field:   "username",
			Message: "must be non-empty and contain only letters, digits, and underscores",
		})
	}
	if password == "" {
		ve.Errors = append(ve.Errors, schema.FieldError{
			Field:   "password",
			Message: "is required",
		})
	}
	if ve.HasErrors() {
		return &ve
	}
	return o.store.CreateReadOnlyUser(ctx, username, password)
}

// validUsername accepts role names that are safe to interpolate into DDL
// after quoting: letters, digits, and underscores, not starting with a digit.
func validUsername(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// publish sends a change event, best-effort. Failures are logged and never
// propagated: the database write already committed.
func (o *ops) publish(ctx context.Context, topic string, data any) {
	id, err := idgen.Generate()
	if err != nil {
		o.log.Warn("generate event id", "topic", topic, "error", err)
		return
	}
	env := events.Envelope{
		ID:        id,
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	if err := o.pub.Publish(ctx, topic, env); err != nil {
		o.log.Warn("publish event", "topic", topic, "error", err)
	}
}

// close releases the publisher and the store, in that order.
func (o *ops) close() error {
	return errors.Join(o.pub.Close(), o.store.Close())
}
