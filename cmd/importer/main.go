package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host string
)

var rootCmd = &cobra.Command{
	Use:   "checkin-importer",
	Short: "Bulk-import players into the checkin server",
	Long: `A bulk-import bot that registers players against the checkin
application's HTTP API from manual input, CSV files or XLSX sheets,
and can replay check-ins or seed test data.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8000", "The host address of the server")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}
