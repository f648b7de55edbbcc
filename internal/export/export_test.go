package export

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/store"
)

// mockStore is a minimal in-memory store for export tests. The embedded
// interface panics for anything ExportJSONL does not call.
type mockStore struct {
	store.Store
	tracks     map[int]*model.AromaTrack
	blocks     map[int]*model.AromaBlock
	cartridges []*model.Cartridge
}

func newMockStore() *mockStore {
	return &mockStore{
		tracks: make(map[int]*model.AromaTrack),
		blocks: make(map[int]*model.AromaBlock),
	}
}

func (m *mockStore) ListTracks(_ context.Context) ([]*model.AromaTrack, error) {
	var result []*model.AromaTrack
	for _, tr := range m.tracks {
		result = append(result, tr)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockStore) ListBlocks(_ context.Context, filter store.BlockFilter) ([]*model.AromaBlock, error) {
	var result []*model.AromaBlock
	for _, b := range m.blocks {
		if filter.TrackID == 0 || b.TrackID == filter.TrackID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *mockStore) ListCartridges(_ context.Context) ([]*model.Cartridge, error) {
	return m.cartridges, nil
}

func TestExportJSONL_Empty(t *testing.T) {
	ms := newMockStore()
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), ms, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (header only), got %d", len(lines))
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.Version != "1" || h.Type != "header" || h.TrackCount != 0 || h.BlockCount != 0 || h.CartridgeCount != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestExportJSONL_WithData(t *testing.T) {
	ms := newMockStore()
	now := time.Now().UTC()

	ms.tracks[2] = &model.AromaTrack{ID: 2, Name: "Evening", CreatedAt: now}
	ms.tracks[1] = &model.AromaTrack{ID: 1, Name: "Morning", CreatedAt: now}

	ms.blocks[10] = &model.AromaBlock{ID: 10, Name: "Citrus burst", TrackID: 1, StartTime: 5, StopTime: 8, CreatedAt: now}
	ms.blocks[11] = &model.AromaBlock{ID: 11, Name: "Pine intro", TrackID: 1, StartTime: 0, StopTime: 5, CreatedAt: now}

	ms.cartridges = []*model.Cartridge{{ID: 1, Name: "Lime", Code: "LIME-01", Class: "citrus"}}

	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), ms, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	// 1 header + 2 tracks + 1 cartridge = 4 lines
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.TrackCount != 2 || h.BlockCount != 2 || h.CartridgeCount != 1 {
		t.Fatalf("header counts: track=%d block=%d cartridge=%d", h.TrackCount, h.BlockCount, h.CartridgeCount)
	}

	var rec1, rec2 record
	if err := json.Unmarshal([]byte(lines[1]), &rec1); err != nil {
		t.Fatalf("unmarshal line 1: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[2]), &rec2); err != nil {
		t.Fatalf("unmarshal line 2: %v", err)
	}
	if rec1.Type != "track" || rec2.Type != "track" {
		t.Fatalf("expected track types, got %q and %q", rec1.Type, rec2.Type)
	}

	data1, _ := json.Marshal(rec1.Data)
	var tr1 model.AromaTrack
	if err := json.Unmarshal(data1, &tr1); err != nil {
		t.Fatalf("unmarshal track 1: %v", err)
	}
	if tr1.ID != 1 {
		t.Fatalf("tracks not sorted: got ID %d first", tr1.ID)
	}

	// Blocks embedded on track 1, ordered by start time.
	if len(tr1.Blocks) != 2 {
		t.Fatalf("expected 2 embedded blocks, got %d", len(tr1.Blocks))
	}
	if tr1.Blocks[0].Name != "Pine intro" || tr1.Blocks[1].Name != "Citrus burst" {
		t.Fatalf("blocks not ordered by start time: %q, %q", tr1.Blocks[0].Name, tr1.Blocks[1].Name)
	}

	var rec3 record
	if err := json.Unmarshal([]byte(lines[3]), &rec3); err != nil {
		t.Fatalf("unmarshal line 3: %v", err)
	}
	if rec3.Type != "cartridge" {
		t.Fatalf("expected cartridge type, got %q", rec3.Type)
	}
}

func nonEmptyLines(s string) []string {
	var result []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}
