package model

// Interpolation identifies the curve used between intensity waypoints.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "linear"
	InterpolationExponential Interpolation = "exponential"
	InterpolationSinusoidal  Interpolation = "sinusoidal"
	InterpolationStep        Interpolation = "step"
	InterpolationFunction    Interpolation = "function"
)

// String returns the string representation of the interpolation mode.
func (i Interpolation) String() string {
	return string(i)
}

// IsValid checks whether the interpolation mode is a known value.
func (i Interpolation) IsValid() bool {
	switch i {
	case InterpolationLinear, InterpolationExponential, InterpolationSinusoidal,
		InterpolationStep, InterpolationFunction:
		return true
	}
	return false
}

// Color is an RGB triple. The uint8 components keep each channel in 0-255
// by construction.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Waypoint pairs a position within the block's time range with an intensity.
// Both coordinates are fractions in [0, 1].
type Waypoint struct {
	T         float64 `json:"t"`
	Intensity float64 `json:"intensity"`
}

// ChannelControlConfig carries the per-channel rendering parameters for a
// block: color, peak intensity, and the interpolation curve, plus optional
// cycle timing, waypoints, and the cartridge loaded into the channel. It is
// a value object serialized into the block's channel_configurations column,
// never persisted on its own.
type ChannelControlConfig struct {
	Color         Color         `json:"color"`
	Intensity     float64       `json:"intensity"`
	Interpolation Interpolation `json:"interpolation"`

	CycleTime     int        `json:"cycle_time,omitempty"`
	Waypoints     []Waypoint `json:"waypoints,omitempty"`
	CartridgeID   string     `json:"cartridge_id,omitempty"`
	CartridgeName string     `json:"cartridge_name,omitempty"`
}
