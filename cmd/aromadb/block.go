package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smellerlabs/aromadb/internal/schema"
)

var blockCmd = &cobra.Command{
	Use:     "block",
	Short:   "Manage aroma blocks",
	GroupID: "tracks",
}

// blockInputFromFlags builds the create/update input shared by the block
// subcommands.
func blockInputFromFlags(cmd *cobra.Command, name string) (schema.AromaBlockCreate, error) {
	in := schema.AromaBlockCreate{Name: name}

	in.Description, _ = cmd.Flags().GetString("description")
	in.DataType, _ = cmd.Flags().GetString("data-type")
	in.ContentLink, _ = cmd.Flags().GetString("content-link")
	in.StartTime, _ = cmd.Flags().GetFloat64("start")
	in.StopTime, _ = cmd.Flags().GetFloat64("stop")
	in.TrackID, _ = cmd.Flags().GetInt("track")

	channels, _ := cmd.Flags().GetString("channels")
	if channels != "" {
		if err := json.Unmarshal([]byte(channels), &in.Channels); err != nil {
			return in, fmt.Errorf("parse --channels: %w", err)
		}
	}
	return in, nil
}

func addBlockInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "block description")
	cmd.Flags().String("data-type", "", "payload data type")
	cmd.Flags().String("content-link", "", "link to external block content")
	cmd.Flags().Float64("start", 0, "start time in seconds")
	cmd.Flags().Float64("stop", 0, "stop time in seconds")
	cmd.Flags().Int("track", 0, "owning track id")
	cmd.Flags().String("channels", "", `channel configurations as JSON, e.g. '{"1":{"intensity":0.7}}'`)
}

var blockCreateCmd = &cobra.Command{
	Use:     "create <name>",
	Aliases: []string{"new"},
	Short:   "Create an aroma block on a track",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := blockInputFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		block, err := svc.CreateAromaBlock(context.Background(), in)
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(block)
			return nil
		}
		printBlock(block)
		return nil
	},
}

var blockShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid block id %q", args[0])
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		block, err := svc.GetAromaBlock(context.Background(), id)
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(block)
			return nil
		}
		printBlock(block)
		return nil
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blocks, optionally for one track",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trackID, _ := cmd.Flags().GetInt("track")

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		blocks, err := svc.ListAromaBlocks(context.Background(), trackID)
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(blocks)
			return nil
		}
		printBlockList(blocks)
		fmt.Printf("\n%d blocks\n", len(blocks))
		return nil
	},
}

var blockUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update a block",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid block id %q", args[0])
		}
		in, err := blockInputFromFlags(cmd, args[1])
		if err != nil {
			return err
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		block, err := svc.UpdateAromaBlock(context.Background(), id, in)
		if err != nil {
			return err
		}

		if flagJSON {
			printJSON(block)
			return nil
		}
		printBlock(block)
		return nil
	},
}

var blockDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid block id %q", args[0])
		}

		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.DeleteAromaBlock(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("block %d deleted\n", id)
		return nil
	},
}

func init() {
	addBlockInputFlags(blockCreateCmd)
	addBlockInputFlags(blockUpdateCmd)
	blockListCmd.Flags().Int("track", 0, "filter by owning track id (0 = all)")

	blockCmd.AddCommand(blockCreateCmd)
	blockCmd.AddCommand(blockShowCmd)
	blockCmd.AddCommand(blockListCmd)
	blockCmd.AddCommand(blockUpdateCmd)
	blockCmd.AddCommand(blockDeleteCmd)
}
