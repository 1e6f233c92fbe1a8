package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/tui"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
	"github.com/tourdeck/tourdeck/internal/tui/wizard"
)

type createFlags struct {
	step int
}

var createOpts createFlags

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tour through the six-step wizard",
	Long: `Opens the full-screen tour creation wizard. Each step is saved to the
catalog API as you complete it; the record stays in the implicit incomplete
state until the final review step publishes it as a draft.

The --step flag jumps to a later step, but steps past the first require an
existing draft in the current session, so a fresh run always lands on the
basic information step.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().IntVar(&createOpts.step, "step", 0, "wizard step to start on (0-5)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tour, err := wizard.Run(newClient(cfg), cfg.MaxGalleryImages, createOpts.step)
	if errors.Is(err, wizard.ErrCancelled) {
		fmt.Println("Tour creation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	s := theme.Current().S()
	fmt.Println(s.SuccessText.Render("✓ Tour created as draft"))
	fmt.Printf("  %s (%s)\n\n", tour.Name, tour.ID)

	// Land on the listing after a successful creation, mirroring the
	// wizard's terminal transition.
	resp, err := newClient(cfg).ListTours(cmd.Context())
	if err != nil {
		fmt.Printf("  View it with: tourdeck show %s\n", tour.ID)
		return nil
	}
	fmt.Print(tui.RenderTourList(resp, termWidth()))
	return nil
}
