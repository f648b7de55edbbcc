// Package model defines the persisted record shapes for aroma data.
package model

import "time"

// AromaTrack is a named timeline container for scheduled scent events.
// A track owns its blocks; deleting a track deletes them.
type AromaTrack struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Blocks is populated by queries that expand the track; it is not a
	// column on the aroma_tracks table.
	Blocks []*AromaBlock `json:"blocks,omitempty"`
}
