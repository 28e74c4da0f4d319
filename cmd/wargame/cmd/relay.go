package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wargame/broker"
)

var relayAddr string

// relayCmd represents the relay command
var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Run a move broker for networked matches",
	Long: `Run the HTTP move broker that two wargame processes relay their moves
through. Each computer move is posted here tagged with its turn number;
the peer polls until the move for the turn it expects shows up.

The relay keeps only the latest move, so one relay serves one match at
a time.

Example:
  wargame relay --addr :8000
  wargame play --game-type attacker --broker http://localhost:8000/`,
	Run: relayHandler,
}

func relayHandler(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := broker.NewRelay().Start(ctx, relayAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(relayCmd)

	relayCmd.Flags().StringVarP(&relayAddr, "addr", "a", ":8000", "Listen address")
}
