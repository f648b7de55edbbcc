package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/smellerlabs/aromadb/internal/events"
)

var watchCmd = &cobra.Command{
	Use:     "watch [topic]",
	Short:   "Stream change events from NATS (default topic aromadb.>)",
	GroupID: "system",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := "aromadb.>"
		if len(args) == 1 {
			topic = args[0]
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.NATSURL == "" {
			return fmt.Errorf("no NATS URL configured (set AROMADB_NATS_URL or a profile nats_url)")
		}

		sub, err := events.NewNATSSubscriber(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		msgs, cancel, err := sub.Subscribe(topic)
		if err != nil {
			return err
		}
		defer cancel()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", topic)
		for {
			select {
			case <-ctx.Done():
				return nil
			case data, ok := <-msgs:
				if !ok {
					return nil
				}
				printEvent(data)
			}
		}
	},
}

func printEvent(data []byte) {
	if flagJSON {
		fmt.Println(string(data))
		return
	}
	var env events.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Printf("%s  %s  %s\n", env.Timestamp.Format("15:04:05"), env.Topic, env.ID)
}
