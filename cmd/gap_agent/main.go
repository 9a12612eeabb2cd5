// Package main provides the entry point for the skill gap analyzer CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_agent",
	Short: "Skill gap analysis engine",
	Long:  "Skill gap analyzer compares extracted resume skills against job description requirements and produces a matched/missing/extra breakdown with a weighted fit score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
