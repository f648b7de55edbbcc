package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/smellerlabs/aromadb/internal/model"
)

func validBlock() AromaBlockCreate {
	return AromaBlockCreate{
		Name:      "Lime intro",
		StartTime: 0.0,
		StopTime:  3.0,
		TrackID:   1,
		Channels: map[int]model.ChannelControlConfig{
			1: {
				Color:         model.Color{R: 0, G: 255, B: 0},
				Intensity:     0.7,
				Interpolation: model.InterpolationLinear,
			},
		},
	}
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a *ValidationError", err)
	}
	return ve.Errors
}

func TestTrackCreateValidate(t *testing.T) {
	in := AromaTrackCreate{Name: "Demo track", Description: "scenario"}
	if err := in.Validate(); err != nil {
		t.Fatalf("valid track rejected: %v", err)
	}

	for name, in := range map[string]AromaTrackCreate{
		"empty name":      {Name: ""},
		"whitespace name": {Name: "   "},
		"too long":        {Name: strings.Repeat("x", 256)},
	} {
		if err := in.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestBlockCreateValidate(t *testing.T) {
	in := validBlock()
	if err := in.Validate(); err != nil {
		t.Fatalf("valid block rejected: %v", err)
	}
}

func TestBlockCreateRejectsInvertedTimeRange(t *testing.T) {
	in := validBlock()
	in.StartTime = 5.0
	in.StopTime = 3.0

	fes := fieldErrors(t, in.Validate())
	if len(fes) != 1 || fes[0].Field != "stop_time" {
		t.Errorf("unexpected field errors: %+v", fes)
	}
}

func TestBlockCreateRejectsNegativeStart(t *testing.T) {
	in := validBlock()
	in.StartTime = -1.0
	in.StopTime = 3.0
	if err := in.Validate(); err == nil {
		t.Fatal("expected validation error for negative start_time")
	}
}

func TestBlockCreateRequiresTrack(t *testing.T) {
	in := validBlock()
	in.TrackID = 0

	fes := fieldErrors(t, in.Validate())
	if len(fes) != 1 || fes[0].Field != "aroma_track_id" {
		t.Errorf("unexpected field errors: %+v", fes)
	}
}

func TestBlockCreateChannelInvariants(t *testing.T) {
	tests := map[string]func(*AromaBlockCreate){
		"zero channel number": func(in *AromaBlockCreate) {
			in.Channels[0] = in.Channels[1]
		},
		"negative channel number": func(in *AromaBlockCreate) {
			in.Channels[-3] = in.Channels[1]
		},
		"intensity above one": func(in *AromaBlockCreate) {
			cfg := in.Channels[1]
			cfg.Intensity = 1.5
			in.Channels[1] = cfg
		},
		"negative intensity": func(in *AromaBlockCreate) {
			cfg := in.Channels[1]
			cfg.Intensity = -0.1
			in.Channels[1] = cfg
		},
		"unknown interpolation": func(in *AromaBlockCreate) {
			cfg := in.Channels[1]
			cfg.Interpolation = "cubic"
			in.Channels[1] = cfg
		},
		"negative cycle time": func(in *AromaBlockCreate) {
			cfg := in.Channels[1]
			cfg.CycleTime = -60
			in.Channels[1] = cfg
		},
		"waypoint out of range": func(in *AromaBlockCreate) {
			cfg := in.Channels[1]
			cfg.Waypoints = []model.Waypoint{{T: 1.2, Intensity: 0.5}}
			in.Channels[1] = cfg
		},
	}

	for name, mutate := range tests {
		in := validBlock()
		mutate(&in)
		if err := in.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestBlockCreateNormalizeDefaultsInterpolation(t *testing.T) {
	in := validBlock()
	cfg := in.Channels[1]
	cfg.Interpolation = ""
	in.Channels[1] = cfg

	if err := in.Validate(); err != nil {
		t.Fatalf("empty interpolation should pass validation: %v", err)
	}
	in.Normalize()
	if got := in.Channels[1].Interpolation; got != model.InterpolationLinear {
		t.Errorf("Interpolation = %q, want linear", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	in := AromaBlockCreate{StartTime: -1, StopTime: -2}
	err := in.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed: ") {
		t.Errorf("message %q missing prefix", msg)
	}
	for _, want := range []string{"name", "start_time", "stop_time", "aroma_track_id"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing field %q", msg, want)
		}
	}
}
