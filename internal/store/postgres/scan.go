package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/smellerlabs/aromadb/internal/model"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanTrack scans a single row into a model.AromaTrack. The row must contain
// columns in the order defined by trackColumns.
func scanTrack(row scannable) (*model.AromaTrack, error) {
	var t model.AromaTrack
	var description sql.NullString

	err := row.Scan(&t.ID, &t.Name, &description, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	return &t, nil
}

// scanBlock scans a single row into a model.AromaBlock. The row must contain
// columns in the order defined by blockColumns.
func scanBlock(row scannable) (*model.AromaBlock, error) {
	var b model.AromaBlock
	var (
		description sql.NullString
		dataType    sql.NullString
		contentLink sql.NullString
		channels    []byte
	)

	err := row.Scan(
		&b.ID,
		&b.Name,
		&description,
		&dataType,
		&contentLink,
		&channels,
		&b.StartTime,
		&b.StopTime,
		&b.TrackID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Description = description.String
	b.DataType = dataType.String
	b.ContentLink = contentLink.String

	b.Channels, err = decodeChannels(channels)
	if err != nil {
		return nil, fmt.Errorf("block %d channel configurations: %w", b.ID, err)
	}

	return &b, nil
}

// scanCartridge scans a single row into a model.Cartridge.
func scanCartridge(row scannable) (*model.Cartridge, error) {
	var c model.Cartridge
	var name, code, class sql.NullString

	err := row.Scan(&c.ID, &name, &code, &class)
	if err != nil {
		return nil, err
	}

	c.Name = name.String
	c.Code = code.String
	c.Class = class.String
	return &c, nil
}

// encodeChannels serializes the channel map for the JSONB column.
// A nil map is stored as an empty object, matching the column default.
func encodeChannels(channels map[int]model.ChannelControlConfig) ([]byte, error) {
	if len(channels) == 0 {
		return []byte(`{}`), nil
	}
	data, err := json.Marshal(channels)
	if err != nil {
		return nil, fmt.Errorf("encode channel configurations: %w", err)
	}
	return data, nil
}

// decodeChannels parses the JSONB column back into the channel map.
func decodeChannels(data []byte) (map[int]model.ChannelControlConfig, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var channels map[int]model.ChannelControlConfig
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return channels, nil
}

// nullString wraps a string so that empty values are stored as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// formatValue renders an arbitrary scanned value as text for table previews.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
