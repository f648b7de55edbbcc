package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listTablesCmd = &cobra.Command{
	Use:     "list-tables",
	Short:   "List the public tables in the database",
	GroupID: "database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		tables, err := svc.TableNames(context.Background())
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(tables)
			return nil
		}
		if len(tables) == 0 {
			fmt.Println("no tables found")
			return nil
		}
		for _, t := range tables {
			fmt.Println(t)
		}
		return nil
	},
}
