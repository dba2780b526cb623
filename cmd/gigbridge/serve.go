package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/WillyEverGreen/gigbridge/internal/config"
	"github.com/WillyEverGreen/gigbridge/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis and rating ledger endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
	}

	// Flags and environment variables win; the config file fills gaps
	explicit := config.Config{
		Port:         servePort,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ExtractorURL: os.Getenv("EXTRACTOR_URL"),
	}
	merged := explicit.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if merged.ExtractorURL == "" {
		return fmt.Errorf("EXTRACTOR_URL environment variable is required")
	}

	// Bearer-token verification is optional: without JWT_SECRET the mutation
	// endpoints run unauthenticated (local development only)
	jwtSecret := ""
	if jwtCfg, err := config.NewJWTConfig(); err == nil {
		jwtSecret = jwtCfg.Secret
	} else {
		log.Printf("[serve] token verification disabled: %v", err)
	}

	cfg := server.Config{
		Port:           merged.Port,
		DatabaseURL:    merged.DatabaseURL,
		ExtractorURL:   merged.ExtractorURL,
		JWTSecret:      jwtSecret,
		TopSkillsLimit: merged.TopSkillsLimit,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
