package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap-analyzer/internal/config"
	"github.com/jonathan/skill-gap-analyzer/internal/logger"
	"github.com/jonathan/skill-gap-analyzer/internal/server"
)

var (
	servePort           int
	serveFuzzyThreshold float64
	serveDebug          bool
	serveJSONLogs       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the gap analysis engine as a REST endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().Float64Var(&serveFuzzyThreshold, "fuzzy-threshold", config.DefaultFuzzyThreshold, "Minimum similarity for fuzzy matches (0.0-1.0)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(serveJSONLogs, serveDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Port:           servePort,
		FuzzyThreshold: serveFuzzyThreshold,
	}, log)

	return srv.Start(ctx)
}
