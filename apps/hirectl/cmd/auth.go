package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the hireloop backend (login, logout, status)",
	Long: `Manage authentication against a hireloop backend.

Subcommands let you obtain tokens (login), drop them (logout), and inspect
the current authentication status. Tokens are stored in the configured
session store for use by other hirectl commands.

Examples:
  hirectl auth login --email you@example.com
  hirectl auth logout
  hirectl auth status`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("auth called")
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
