package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tourdeck/tourdeck/internal/config"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

type setupFlags struct {
	project bool
	force   bool
}

var setupOpts setupFlags

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a tourdeck config file with default settings",
	Long: `Writes a tourdeck.yml with the default settings so they can be edited.

By default the file goes to the XDG global location
($XDG_CONFIG_HOME/tourdeck/tourdeck.yml). Use --project to write it to the
current directory instead; a project file overrides the global one.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupOpts.project, "project", false, "write ./tourdeck.yml instead of the global config")
	setupCmd.Flags().BoolVar(&setupOpts.force, "force", false, "overwrite an existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := config.GlobalPath()
	if setupOpts.project {
		path = config.ProjectPath()
	}

	if _, err := os.Stat(path); err == nil && !setupOpts.force {
		return fmt.Errorf("config file already exists at %s. Use --force to overwrite", path)
	}

	cfg := &config.Config{
		APIURL:           "http://localhost:5000/api/v1",
		TimeoutSeconds:   30,
		MaxGalleryImages: 10,
		LogLevel:         "info",
		LogFile:          "",
	}

	var err error
	if setupOpts.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return err
	}

	s := theme.Current().S()
	fmt.Println(s.SuccessText.Render("✓ Config written to " + path))
	fmt.Println("  Edit it to point at your catalog API, then run: tourdeck create")
	return nil
}
