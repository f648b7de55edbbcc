package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var initSchemaCmd = &cobra.Command{
	Use:     "init-schema",
	Short:   "Create the database schema (idempotent)",
	GroupID: "database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dropFirst, _ := cmd.Flags().GetBool("drop-first")
		yes, _ := cmd.Flags().GetBool("yes")

		if dropFirst && !yes {
			fmt.Print("This will DROP all existing tables and their data. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("aborted")
				return nil
			}
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.SetupSchema(context.Background(), dropFirst); err != nil {
			return err
		}
		fmt.Println("schema ready")
		return nil
	},
}

func init() {
	initSchemaCmd.Flags().Bool("drop-first", false, "drop existing tables before creating the schema")
	initSchemaCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
