package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/tui"
)

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "List all tours in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		resp, err := newClient(cfg).ListTours(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print(tui.RenderTourList(resp, termWidth()))
		return nil
	},
}
