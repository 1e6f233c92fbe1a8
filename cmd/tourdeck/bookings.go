package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/tui"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List booked tours",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		resp, err := newClient(cfg).ListBookings(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print(tui.RenderBookings(resp, termWidth()))
		return nil
	},
}
