package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	s, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, s)
	}

	fmt.Fprintf(out, "Server:  %s (%s)\n", serverURL, s.Status)
	fmt.Fprintf(out, "Version: %s\n", s.Version)
	fmt.Fprintf(out, "Reviews: %d across %d movie(s)\n", s.Reviews.Reviews, s.Reviews.Movies)
	return nil
}
