package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the extraction service is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client, err := newExtractionClient()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if client.Health(cmd.Context()) {
		_, _ = color.New(color.FgGreen).Fprintf(out, "✓ extraction service is up at %s\n", client.BaseURL())
		return nil
	}

	_, _ = color.New(color.FgRed).Fprintf(out, "✗ extraction service is unreachable at %s\n", client.BaseURL())
	return fmt.Errorf("extraction service is unreachable")
}
