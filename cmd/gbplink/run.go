package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/clktmr/gba/drivers/gbplayer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Emulate the accessory and log rumble changes",
	Long: `Emulate the Game Boy Player on the bridge and log every change of the link
state and the rumble command. Press Ctrl+C to exit.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	bridge, info, err := OpenBridge()
	if err != nil {
		return err
	}
	defer bridge.Close()

	fmt.Printf("gbplink\n")
	fmt.Printf("Connection: %s\n", info)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	var buzzer *Buzzer
	if sound {
		buzzer, err = NewBuzzer()
		if err != nil {
			return err
		}
		defer buzzer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return play(ctx, bridge, interval, func(s status) {
		log.Println(formatStatus(s))
		if buzzer != nil {
			buzzer.Set(s.rumble == gbplayer.Start)
		}
	})
}

func formatStatus(s status) string {
	if !s.synced {
		return fmt.Sprintf("waiting for console (%d restarts)", s.restarts)
	}
	return fmt.Sprintf("synced, rumble %v", s.rumble)
}
