package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/smellerlabs/aromadb/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version        string    `json:"version"`
	Type           string    `json:"type"`
	Timestamp      time.Time `json:"timestamp"`
	TrackCount     int       `json:"track_count"`
	BlockCount     int       `json:"block_count"`
	CartridgeCount int       `json:"cartridge_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ExportJSONL writes all tracks and cartridges from the store as JSONL
// to w. Each track embeds its blocks, ordered by start time.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	tracks, err := s.ListTracks(ctx)
	if err != nil {
		return fmt.Errorf("list tracks: %w", err)
	}

	blockCount := 0
	for _, tr := range tracks {
		blocks, err := s.ListBlocks(ctx, store.BlockFilter{TrackID: tr.ID})
		if err != nil {
			return fmt.Errorf("list blocks for track %d: %w", tr.ID, err)
		}
		tr.Blocks = blocks
		blockCount += len(blocks)
	}

	cartridges, err := s.ListCartridges(ctx)
	if err != nil {
		return fmt.Errorf("list cartridges: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:        "1",
		Type:           "header",
		Timestamp:      time.Now().UTC(),
		TrackCount:     len(tracks),
		BlockCount:     blockCount,
		CartridgeCount: len(cartridges),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, tr := range tracks {
		if err := enc.Encode(record{Type: "track", Data: tr}); err != nil {
			return fmt.Errorf("encode track %d: %w", tr.ID, err)
		}
	}

	for _, c := range cartridges {
		if err := enc.Encode(record{Type: "cartridge", Data: c}); err != nil {
			return fmt.Errorf("encode cartridge %d: %w", c.ID, err)
		}
	}

	return nil
}
