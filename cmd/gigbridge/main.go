// Package main provides the entry point for the GigBridge rating service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gigbridge",
	Short: "GigBridge resume rating service",
	Long:  "GigBridge rates freelancer resumes and maintains per-user skill rating ledgers driven by project outcomes, exposed via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
