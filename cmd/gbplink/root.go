package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	// Serial bridge flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	timeout  time.Duration
	interval time.Duration
	sound    bool
)

var rootCmd = &cobra.Command{
	Use:   "gbplink",
	Short: "Game Boy Player rumble accessory emulator",
	Long: `gbplink emulates the Game Boy Player's side of the rumble protocol on a
link cable bridge. It performs the handshake, exchanges the magic values and
then polls the cartridge for rumble commands once per interval.

Bridges:
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

Each transfer is a single big endian word in both directions. A serial bridge
stays silent if the console didn't reply, a websocket bridge sends an empty
message.

For WebSocket authentication, the password is read from the GBPLINK_PASSWORD
environment variable, or prompted interactively if not set.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 100*time.Millisecond, "Time to wait for the console's reply")
	rootCmd.PersistentFlags().DurationVar(&interval, "interval", 16*time.Millisecond, "Time between transfers")
	rootCmd.PersistentFlags().BoolVar(&sound, "sound", false, "Buzz while the motor is running")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
