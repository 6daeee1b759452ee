// Package cmd implements the concierge CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"
const logo = "🏨"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: logo + " concierge — Hotelzify MCP server",
	Long:  logo + " concierge — hotel search, availability and booking tools over the Model Context Protocol",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(toolsCmd)
}
