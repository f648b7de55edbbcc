package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smellerlabs/aromadb/internal/export"
	"github.com/smellerlabs/aromadb/internal/store/postgres"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export all tracks, blocks, and cartridges as JSONL",
	GroupID: "database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		bucket, _ := cmd.Flags().GetString("s3-bucket")
		key, _ := cmd.Flags().GetString("s3-key")
		region, _ := cmd.Flags().GetString("s3-region")
		endpoint, _ := cmd.Flags().GetString("s3-endpoint")

		if bucket != "" && key == "" {
			return fmt.Errorf("--s3-key is required with --s3-bucket")
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		st, err := postgres.New(cfg.URL())
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		// S3 upload needs the full payload in memory; everything else
		// streams.
		if bucket != "" {
			var buf bytes.Buffer
			if err := export.ExportJSONL(ctx, st, &buf); err != nil {
				return err
			}
			dest, err := export.NewS3Destination(ctx, bucket, key, region, endpoint)
			if err != nil {
				return err
			}
			if err := dest.Write(ctx, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "uploaded %d bytes to s3://%s/%s\n", buf.Len(), bucket, key)
			return nil
		}

		var w io.Writer = os.Stdout
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return export.ExportJSONL(ctx, st, w)
	},
}

func init() {
	exportCmd.Flags().String("out", "-", "output file (- for stdout)")
	exportCmd.Flags().String("s3-bucket", "", "upload to this S3 bucket instead of writing locally")
	exportCmd.Flags().String("s3-key", "", "S3 object key for the upload")
	exportCmd.Flags().String("s3-region", "us-east-1", "S3 region")
	exportCmd.Flags().String("s3-endpoint", "", "custom S3 endpoint (enables path-style addressing)")
}
