package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cartridgesCmd = &cobra.Command{
	Use:     "cartridges [id]",
	Short:   "List the cartridge reference data, or show one by id",
	GroupID: "tracks",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid cartridge id %q", args[0])
			}
			cartridge, err := svc.GetCartridge(context.Background(), id)
			if err != nil {
				return err
			}
			if flagJSON {
				printJSON(cartridge)
				return nil
			}
			fmt.Printf("ID:    %d\nName:  %s\nCode:  %s\nClass: %s\n",
				cartridge.ID, cartridge.Name, cartridge.Code, cartridge.Class)
			return nil
		}

		cartridges, err := svc.GetAllCartridges(context.Background())
		if err != nil {
			return err
		}
		if flagJSON {
			printJSON(cartridges)
			return nil
		}
		printCartridgeList(cartridges)
		return nil
	},
}
