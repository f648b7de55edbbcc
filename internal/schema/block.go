package schema

import (
	"fmt"
	"strings"

	"github.com/smellerlabs/aromadb/internal/model"
)

// AromaBlockCreate is the input shape for creating or updating an aroma block.
type AromaBlockCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DataType    string `json:"data_type,omitempty"`
	ContentLink string `json:"content_link,omitempty"`

	Channels map[int]model.ChannelControlConfig `json:"channel_configurations,omitempty"`

	StartTime float64 `json:"start_time"`
	StopTime  float64 `json:"stop_time"`
	TrackID   int     `json:"aroma_track_id"`
}

// Validate checks the input against the block invariants: a non-empty name,
// a sane time range (stop >= start >= 0), a referenced track, and
// well-formed channel configurations. An unset interpolation is permitted;
// Normalize defaults it to linear.
func (in *AromaBlockCreate) Validate() error {
	var ve ValidationError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.add("name", "is required")
	} else if len([]rune(name)) > maxNameLength {
		ve.add("name", "must be 255 characters or fewer")
	}

	if in.StartTime < 0 {
		ve.add("start_time", fmt.Sprintf("must not be negative, got %v", in.StartTime))
	}
	if in.StopTime < in.StartTime {
		ve.add("stop_time", fmt.Sprintf("must not precede start_time (%v < %v)", in.StopTime, in.StartTime))
	}

	if in.TrackID < 1 {
		ve.add("aroma_track_id", "is required")
	}

	for num, cfg := range in.Channels {
		validateChannel(&ve, num, cfg)
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}

// Normalize fills defaults the validation pass permits to be absent:
// channel configurations with no interpolation mode become linear.
func (in *AromaBlockCreate) Normalize() {
	for num, cfg := range in.Channels {
		if cfg.Interpolation == "" {
			cfg.Interpolation = model.InterpolationLinear
			in.Channels[num] = cfg
		}
	}
}

func validateChannel(ve *ValidationError, num int, cfg model.ChannelControlConfig) {
	field := fmt.Sprintf("channel_configurations[%d]", num)

	if num < 1 {
		ve.add(field, "channel number must be a positive integer")
	}
	if cfg.Intensity < 0 || cfg.Intensity > 1 {
		ve.add(field+".intensity", fmt.Sprintf("must be between 0 and 1, got %v", cfg.Intensity))
	}
	if cfg.Interpolation != "" && !cfg.Interpolation.IsValid() {
		ve.add(field+".interpolation", fmt.Sprintf("unknown mode %q", cfg.Interpolation))
	}
	if cfg.CycleTime < 0 {
		ve.add(field+".cycle_time", fmt.Sprintf("must not be negative, got %d", cfg.CycleTime))
	}
	for i, wp := range cfg.Waypoints {
		if wp.T < 0 || wp.T > 1 || wp.Intensity < 0 || wp.Intensity > 1 {
			ve.add(fmt.Sprintf("%s.waypoints[%d]", field, i), "coordinates must be between 0 and 1")
		}
	}
}
