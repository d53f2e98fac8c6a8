package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/a3tai/filing-renamer/internal/config"
	"github.com/a3tai/filing-renamer/internal/extract"
	"github.com/a3tai/filing-renamer/internal/mcp"
	"github.com/a3tai/filing-renamer/internal/pdf"
	"github.com/a3tai/filing-renamer/internal/renamer"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	if cfg.IsMCPMode() {
		// In MCP mode, redirect log output to stderr to avoid interfering with the protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		pflag.Usage()
		os.Exit(1)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && cfg.IsRenameMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	reader := pdf.NewReader(cfg.MaxFileSize)
	validator := pdf.NewValidator(cfg.MaxFileSize)
	search := pdf.NewSearch()
	catalog := extract.DefaultCatalog()

	if cfg.IsMCPMode() {
		runMCPMode(cfg, reader, validator, search, catalog)
		return
	}

	runRenameMode(cfg, reader, validator, search, catalog)
}

// runRenameMode processes the source directory once and exits.
func runRenameMode(cfg *config.Config, reader *pdf.Reader, validator *pdf.Validator, search *pdf.Search, catalog *extract.Catalog) {
	if cfg.DryRun {
		fmt.Println("=== DRY RUN MODE - No files will be renamed ===")
		fmt.Println()
	}

	r := renamer.New(reader, validator, search, catalog, os.Stdout)
	if _, err := r.Run(renamer.Options{
		Directory: cfg.SourceDirectory,
		DryRun:    cfg.DryRun,
		MaxPages:  cfg.MaxPages,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMCPMode serves the rename tools over stdio until the parent closes the pipe.
func runMCPMode(cfg *config.Config, reader *pdf.Reader, validator *pdf.Validator, search *pdf.Search, catalog *extract.Catalog) {
	server, err := mcp.NewServer(cfg, reader, validator, search, catalog)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("SEC Filing Renamer\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
