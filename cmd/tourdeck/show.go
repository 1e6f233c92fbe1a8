package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <tour-id>",
	Short: "Show one tour rendered as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		tour, err := newClient(cfg).GetTour(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Print(tui.RenderTourDetail(tour, termWidth()))
		return nil
	},
}
