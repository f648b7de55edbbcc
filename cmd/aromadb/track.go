package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smellerlabs/aromadb/internal/schema"
)

var trackCmd = &cobra.Command{
	Use:     "track",
	Short:   "Manage aroma tracks",
	GroupID: "tracks",
}

var trackCreateCmd = &cobra.Command{
	Use:     "create <name>",
	Aliases: []string{"new"},
	Short:   "Create an aroma track",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		track, err := svc.CreateAromaTrack(context.Background(), schema.AromaTrackCreate{
			Name:        args[0],
			Description: desc,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(track)
			return nil
		}
		printTrack(track)
		return nil
	},
}

var trackShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a track with its blocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid track id %q", args[0])
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		track, err := svc.GetAromaTrack(context.Background(), id)
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(track)
			return nil
		}
		printTrack(track)
		return nil
	},
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		tracks, err := svc.ListAromaTracks(context.Background())
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(tracks)
			return nil
		}
		printTrackList(tracks)
		return nil
	},
}

var trackUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Rename a track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid track id %q", args[0])
		}
		desc, _ := cmd.Flags().GetString("description")

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		track, err := svc.UpdateAromaTrack(context.Background(), id, schema.AromaTrackCreate{
			Name:        args[1],
			Description: desc,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(track)
			return nil
		}
		printTrack(track)
		return nil
	},
}

var trackDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a track and all its blocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid track id %q", args[0])
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.DeleteAromaTrack(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("track %d deleted\n", id)
		return nil
	},
}

func init() {
	trackCreateCmd.Flags().String("description", "", "track description")
	trackUpdateCmd.Flags().String("description", "", "track description")

	trackCmd.AddCommand(trackCreateCmd)
	trackCmd.AddCommand(trackShowCmd)
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackUpdateCmd)
	trackCmd.AddCommand(trackDeleteCmd)
}
