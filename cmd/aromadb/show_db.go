package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var showDBCmd = &cobra.Command{
	Use:     "show-db",
	Short:   "Print every table with its headers and a row sample",
	GroupID: "database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, _ := cmd.Flags().GetInt("rows")
		headersOnly, _ := cmd.Flags().GetBool("headers")

		svc, cfg, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if !cmd.Flags().Changed("rows") {
			rows = cfg.PreviewRows
		}

		return svc.DatabaseOverview(context.Background(), os.Stdout, rows, headersOnly)
	},
}

func init() {
	showDBCmd.Flags().Int("rows", 3, "sample rows to show per table")
	showDBCmd.Flags().Bool("headers", false, "show column headers only, no rows")
}
