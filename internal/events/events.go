// Package events publishes change notifications for aroma data. Publishing
// is best-effort: the service logs failures and never fails an operation
// because an event could not be delivered.
package events

import (
	"context"
	"time"

	"github.com/smellerlabs/aromadb/internal/model"
)

// Event topic constants
const (
	TopicTrackCreated = "aromadb.track.created"
	TopicTrackUpdated = "aromadb.track.updated"
	TopicTrackDeleted = "aromadb.track.deleted"

	TopicBlockCreated = "aromadb.block.created"
	TopicBlockUpdated = "aromadb.block.updated"
	TopicBlockDeleted = "aromadb.block.deleted"
)

// Publisher delivers events to interested subscribers.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Envelope wraps every published payload with an event ID and timestamp.
type Envelope struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Event payload types

type TrackCreated struct {
	Track *model.AromaTrack `json:"track"`
}

type TrackUpdated struct {
	Track *model.AromaTrack `json:"track"`
}

type TrackDeleted struct {
	TrackID int `json:"track_id"`
}

type BlockCreated struct {
	Block *model.AromaBlock `json:"block"`
}

type BlockUpdated struct {
	Block *model.AromaBlock `json:"block"`
}

type BlockDeleted struct {
	BlockID int `json:"block_id"`
	TrackID int `json:"track_id"`
}
