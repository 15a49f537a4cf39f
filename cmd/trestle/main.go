package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var configPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trestle",
		Short: "Trestle project-management tracking backend",
		Long:  "Trestle tracks projects, contract ledgers, matters arising, and task breakdowns over an HTTP JSON API.",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newUserCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trestle %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
