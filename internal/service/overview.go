package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/smellerlabs/aromadb/internal/ui"
)

// databaseOverview prints every public table with its column headers and a
// bounded row sample. headersOnly suppresses the sample rows.
func (o *ops) databaseOverview(ctx context.Context, w io.Writer, previewRows int, headersOnly bool) error {
	tables, err := o.store.TableNames(ctx)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Fprintln(w, "no tables found")
		return nil
	}

	limit := previewRows
	if headersOnly {
		limit = 0
	}

	for i, table := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		preview, err := o.store.PreviewTable(ctx, table, limit)
		if err != nil {
			return fmt.Errorf("preview %s: %w", table, err)
		}

		fmt.Fprintln(w, ui.RenderHeading(table))

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(preview.Headers, "\t"))
		for _, row := range preview.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if !headersOnly {
			switch n := len(preview.Rows); n {
			case 0:
				fmt.Fprintln(w, ui.RenderMuted("(empty)"))
			case 1:
				fmt.Fprintln(w, ui.RenderMuted("(1 row shown)"))
			default:
				fmt.Fprintln(w, ui.RenderMuted(fmt.Sprintf("(%d rows shown)", n)))
			}
		}
	}

	return nil
}
