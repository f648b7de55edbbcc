package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/smellerlabs/aromadb/internal/model"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printTrack(track *model.AromaTrack) {
	fmt.Printf("ID:          %d\n", track.ID)
	fmt.Printf("Name:        %s\n", track.Name)
	if track.Description != "" {
		fmt.Printf("Description: %s\n", track.Description)
	}
	if !track.CreatedAt.IsZero() {
		fmt.Printf("Created At:  %s\n", track.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if len(track.Blocks) > 0 {
		fmt.Printf("Blocks:      %d\n\n", len(track.Blocks))
		printBlockList(track.Blocks)
	}
}

func printTrackList(tracks []*model.AromaTrack) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tCREATED")
	for _, t := range tracks {
		desc := t.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			t.ID,
			t.Name,
			desc,
			t.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()
	fmt.Printf("\n%d tracks\n", len(tracks))
}

func printBlock(block *model.AromaBlock) {
	fmt.Printf("ID:          %d\n", block.ID)
	fmt.Printf("Name:        %s\n", block.Name)
	if block.Description != "" {
		fmt.Printf("Description: %s\n", block.Description)
	}
	fmt.Printf("Track:       %d\n", block.TrackID)
	fmt.Printf("Window:      %.3f - %.3f\n", block.StartTime, block.StopTime)
	if block.DataType != "" {
		fmt.Printf("Data Type:   %s\n", block.DataType)
	}
	if block.ContentLink != "" {
		fmt.Printf("Content:     %s\n", block.ContentLink)
	}
	if len(block.Channels) > 0 {
		nums := make([]int, 0, len(block.Channels))
		for n := range block.Channels {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		fmt.Println("Channels:")
		for _, n := range nums {
			c := block.Channels[n]
			fmt.Printf("  %d: intensity=%.2f interpolation=%s color=#%02x%02x%02x\n",
				n, c.Intensity, c.Interpolation, c.Color.R, c.Color.G, c.Color.B)
		}
	}
	if !block.CreatedAt.IsZero() {
		fmt.Printf("Created At:  %s\n", block.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func printBlockList(blocks []*model.AromaBlock) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTRACK\tSTART\tSTOP\tCHANNELS")
	for _, b := range blocks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.3f\t%.3f\t%d\n",
			b.ID,
			b.Name,
			b.TrackID,
			b.StartTime,
			b.StopTime,
			len(b.Channels),
		)
	}
	w.Flush()
}

func printCartridgeList(cartridges []*model.Cartridge) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCODE\tCLASS")
	for _, c := range cartridges {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Code, c.Class)
	}
	w.Flush()
	fmt.Printf("\n%d cartridges\n", len(cartridges))
}
