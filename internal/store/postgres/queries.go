package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/store"
)

// Column lists used for SELECT statements.
const (
	trackColumns = `id, name, description, created_at`
	blockColumns = `id, name, description, data_type, content_link,
		channel_configurations, start_time, stop_time, aroma_track_id, created_at`
	cartridgeColumns = `id, name, code, class`
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryCreateTrack(ctx context.Context, db executor, t *model.AromaTrack) error {
	return db.QueryRowContext(ctx, `
		INSERT INTO aroma_tracks (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		t.Name,
		nullString(t.Description),
	).Scan(&t.ID, &t.CreatedAt)
}

func queryGetTrack(ctx context.Context, db executor, id int) (*model.AromaTrack, error) {
	row := db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM aroma_tracks WHERE id = $1`, id)
	return scanTrack(row)
}

func queryListTracks(ctx context.Context, db executor) ([]*model.AromaTrack, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+trackColumns+` FROM aroma_tracks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*model.AromaTrack
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func queryUpdateTrack(ctx context.Context, db executor, t *model.AromaTrack) error {
	return db.QueryRowContext(ctx, `
		UPDATE aroma_tracks SET name = $2, description = $3
		WHERE id = $1
		RETURNING created_at`,
		t.ID,
		t.Name,
		nullString(t.Description),
	).Scan(&t.CreatedAt)
}

func queryDeleteTrack(ctx context.Context, db executor, id int) error {
	res, err := db.ExecContext(ctx, `DELETE FROM aroma_tracks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func queryCreateBlock(ctx context.Context, db executor, b *model.AromaBlock) error {
	channels, err := encodeChannels(b.Channels)
	if err != nil {
		return err
	}
	return db.QueryRowContext(ctx, `
		INSERT INTO aroma_blocks (
			name, description, data_type, content_link,
			channel_configurations, start_time, stop_time, aroma_track_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		b.Name,
		nullString(b.Description),
		nullString(b.DataType),
		nullString(b.ContentLink),
		channels,
		b.StartTime,
		b.StopTime,
		b.TrackID,
	).Scan(&b.ID, &b.CreatedAt)
}

func queryGetBlock(ctx context.Context, db executor, id int) (*model.AromaBlock, error) {
	row := db.QueryRowContext(ctx, `SELECT `+blockColumns+` FROM aroma_blocks WHERE id = $1`, id)
	return scanBlock(row)
}

func queryListBlocks(ctx context.Context, db executor, filter store.BlockFilter) ([]*model.AromaBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM aroma_blocks`
	var args []any
	if filter.TrackID > 0 {
		query += ` WHERE aroma_track_id = $1`
		args = append(args, filter.TrackID)
	}
	query += ` ORDER BY start_time, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*model.AromaBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func queryUpdateBlock(ctx context.Context, db executor, b *model.AromaBlock) error {
	channels, err := encodeChannels(b.Channels)
	if err != nil {
		return err
	}
	return db.QueryRowContext(ctx, `
		UPDATE aroma_blocks SET
			name = $2,
			description = $3,
			data_type = $4,
			content_link = $5,
			channel_configurations = $6,
			start_time = $7,
			stop_time = $8,
			aroma_track_id = $9
		WHERE id = $1
		RETURNING created_at`,
		b.ID,
		b.Name,
		nullString(b.Description),
		nullString(b.DataType),
		nullString(b.ContentLink),
		channels,
		b.StartTime,
		b.StopTime,
		b.TrackID,
	).Scan(&b.CreatedAt)
}

func queryDeleteBlock(ctx context.Context, db executor, id int) error {
	res, err := db.ExecContext(ctx, `DELETE FROM aroma_blocks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func queryGetCartridge(ctx context.Context, db executor, id int) (*model.Cartridge, error) {
	row := db.QueryRowContext(ctx, `SELECT `+cartridgeColumns+` FROM cartridges WHERE id = $1`, id)
	return scanCartridge(row)
}

func queryListCartridges(ctx context.Context, db executor) ([]*model.Cartridge, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+cartridgeColumns+` FROM cartridges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cartridges: %w", err)
	}
	defer rows.Close()

	var cartridges []*model.Cartridge
	for rows.Next() {
		c, err := scanCartridge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cartridge: %w", err)
		}
		cartridges = append(cartridges, c)
	}
	return cartridges, rows.Err()
}

func queryTableNames(ctx context.Context, db executor) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// queryPreviewTable fetches up to limit rows of an arbitrary table. The table
// name is checked against information_schema before being interpolated, and
// quoted, so a caller-supplied name cannot smuggle SQL.
func queryPreviewTable(ctx context.Context, db executor, table string, limit int) (*store.TablePreview, error) {
	names, err := queryTableNames(ctx, db)
	if err != nil {
		return nil, err
	}
	known := false
	for _, n := range names {
		if n == table {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("table %q: %w", table, store.ErrNotFound)
	}

	rows, err := db.QueryContext(ctx,
		fmt.Sprintf(`SELECT * FROM %s LIMIT $1`, pq.QuoteIdentifier(table)), limit)
	if err != nil {
		return nil, fmt.Errorf("preview %s: %w", table, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("preview %s columns: %w", table, err)
	}

	preview := &store.TablePreview{Headers: headers}
	for rows.Next() {
		values := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("preview %s scan: %w", table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		preview.Rows = append(preview.Rows, row)
	}
	return preview, rows.Err()
}

// queryCreateReadOnlyUser creates a login role with SELECT-only access to the
// current database. CREATE ROLE cannot take bind parameters, so the username
// and password are quoted through lib/pq.
func queryCreateReadOnlyUser(ctx context.Context, db executor, username, password string) error {
	var dbName string
	if err := db.QueryRowContext(ctx, `SELECT current_database()`).Scan(&dbName); err != nil {
		return fmt.Errorf("current database: %w", err)
	}

	role := pq.QuoteIdentifier(username)
	stmts := []string{
		fmt.Sprintf(`CREATE ROLE %s WITH LOGIN PASSWORD %s`, role, pq.QuoteLiteral(password)),
		fmt.Sprintf(`GRANT CONNECT ON DATABASE %s TO %s`, pq.QuoteIdentifier(dbName), role),
		fmt.Sprintf(`GRANT USAGE ON SCHEMA public TO %s`, role),
		fmt.Sprintf(`GRANT SELECT ON ALL TABLES IN SCHEMA public TO %s`, role),
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create read-only user %s: %w", username, err)
		}
	}
	return nil
}
