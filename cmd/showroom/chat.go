package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dealerdesk/showroom/config"
	"github.com/dealerdesk/showroom/session"
)

func newChatCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			sr, cleanup, err := buildShowroom(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			sessionID := session.NewID()
			fmt.Println("Showroom assistant. Type 'exit' to quit, 'analytics' for session stats.")
			fmt.Println()

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("you> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				switch strings.ToLower(line) {
				case "exit", "quit":
					return nil
				case "analytics":
					a := sr.Analytics(sessionID)
					fmt.Printf("interactions=%d success=%.0f%% recent=%.0f%% confidence=%.0f%%\n\n",
						a.TotalInteractions, a.OverallSuccess*100, a.RecentSuccess*100, a.AvgConfidence*100)
					continue
				}

				turn := sr.Process(cmd.Context(), sessionID, line)
				if turn.Response == "" {
					// Booking-family actions leave rendering to the UI;
					// the REPL points at the booking endpoints instead.
					fmt.Println("assistant> Let's get your test drive sorted. Use the booking API " +
						"(POST /api/bookings) or the web UI to pick a slot.")
				} else {
					fmt.Println("assistant>", turn.Response)
				}
				fmt.Println()
			}
		},
	}
}
