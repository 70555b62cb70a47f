package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "store",
	Short: "Store service - users, customers, products and orders over HTTP",
	Long: `store runs the store HTTP service backed by PostgreSQL.

Commands:
  serve        - Create the schema and serve the HTTP API
  create-user  - Create a user from the command line`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
