package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var createUserCmd = &cobra.Command{
	Use:     "create-user <username>",
	Short:   "Create a read-only database user",
	GroupID: "database",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.CreateReadOnlyUser(context.Background(), username, password); err != nil {
			return err
		}
		fmt.Printf("read-only user %q created\n", username)
		return nil
	},
}

func init() {
	createUserCmd.Flags().String("password", "", "password for the new user (prompted when omitted)")
}
