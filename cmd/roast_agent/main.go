// Package main provides the entry point for the Presidential Roast HTTP API
// server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roast_agent",
	Short: "Presidential Roast API Server",
	Long:  "Presidential Roast turns business ideas, resumes, and Twitter handles into scored parody roasts, with simulated token rewards, via REST API or one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
