package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelzify/concierge/internal/config"
	"github.com/hotelzify/concierge/internal/container"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered MCP tools and widgets",
	RunE:  runTools,
}

// runTools works without an API token: listing is local, only booking
// needs the credential.
func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}
	defer c.Logger().Sync()

	fmt.Println("Tools:")
	for _, tool := range c.Tools().AllTools() {
		fmt.Printf("  %-25s %s\n", tool.Name(), tool.Description())
	}

	fmt.Println("\nWidgets:")
	for _, w := range c.Widgets().All() {
		fmt.Printf("  %-25s %s\n", w.ToolID, w.TemplateURI)
	}
	return nil
}
