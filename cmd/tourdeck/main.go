package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/logger"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

const (
	logoText1 = "▀█▀ █▀█ █ █ █▀█ █▀▄ █▀▀ █▀▀ █▄▀"
	logoText2 = " █  █▄█ █▄█ █▀▄ █▄▀ ██▄ █▄▄ █ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tourdeck",
	Short: "Terminal admin console for the tour catalog",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

tourdeck manages a remote tour catalog from the terminal. It creates tours
through a six-step full-screen wizard (Bubbletea v2), persisting each step
against the catalog REST API, and renders read-only listing, detail and
booking views.`

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(toursCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(setupCmd)
}
