package model

import "time"

// AromaBlock is a time-bounded scent event within a track. StopTime is
// always greater than or equal to StartTime, and StartTime is never
// negative; both invariants are enforced at the schema boundary and by
// CHECK constraints in the database.
type AromaBlock struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DataType    string `json:"data_type,omitempty"`
	ContentLink string `json:"content_link,omitempty"`

	// Channels maps a device channel number (>= 1) to its control
	// configuration. Stored as a JSONB column on the block row.
	Channels map[int]ChannelControlConfig `json:"channel_configurations,omitempty"`

	StartTime float64   `json:"start_time"`
	StopTime  float64   `json:"stop_time"`
	TrackID   int       `json:"aroma_track_id"`
	CreatedAt time.Time `json:"created_at"`
}
