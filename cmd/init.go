package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hotelzify/concierge/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to ~/.concierge/config.json",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(_ *cobra.Command, _ []string) error {
	path := config.ConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := config.Save(&cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("%s Wrote default config to %s\n", logo, path)
	fmt.Printf("Set %s (or upstream.apiToken in the config) before serving: bookings require it.\n",
		config.EnvAPIToken)
	return nil
}
