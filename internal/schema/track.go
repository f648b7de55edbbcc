package schema

import "strings"

// maxNameLength bounds track and block names.
const maxNameLength = 255

// AromaTrackCreate is the input shape for creating or updating an aroma track.
type AromaTrackCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validate checks the input against the track invariants. It returns a
// *ValidationError listing every violated field, or nil.
func (in *AromaTrackCreate) Validate() error {
	var ve ValidationError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.add("name", "is required")
	} else if len([]rune(name)) > maxNameLength {
		ve.add("name", "must be 255 characters or fewer")
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
