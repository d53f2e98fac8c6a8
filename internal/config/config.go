package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeRename = "rename"
	ModeMCP    = "mcp"

	// Default values
	DefaultMaxPages    = 5
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the filing renamer.
type Config struct {
	// Run configuration
	Mode            string // "rename" or "mcp"
	SourceDirectory string
	DryRun          bool

	// Extraction configuration
	MaxPages    int   // leading pages read per document
	MaxFileSize int64 // maximum PDF file size in bytes

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeRename,
		DryRun:      false,
		MaxPages:    DefaultMaxPages,
		MaxFileSize: DefaultMaxFileSize,
		Version:     "1.0.0",
		ServerName:  "filing-renamer",
		LogLevel:    DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration. The
// source directory is the first positional argument.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)
	cfg.SourceDirectory = pflag.Arg(0)

	if cfg.SourceDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.SourceDirectory); err == nil {
			cfg.SourceDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("FILING_RENAMER")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("dryrun", cfg.DryRun)
	viper.SetDefault("maxpages", cfg.MaxPages)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'rename' to process a directory, 'mcp' for MCP standard I/O")
	pflag.BoolP("dry-run", "n", cfg.DryRun, "Compute and report renames without touching the filesystem")
	pflag.Int("max-pages", cfg.MaxPages, "Leading pages to read from each PDF")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("dryrun", pflag.Lookup("dry-run"))
	_ = viper.BindPFlag("maxpages", pflag.Lookup("max-pages"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] <source-directory>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFiling Renamer - renames SEC filing PDFs from their extracted metadata\n")
		fmt.Fprintf(os.Stderr, "\nFiles are renamed to the format:\n")
		fmt.Fprintf(os.Stderr, "  YYYY-MM-DD_FILING-TYPE_TICKER_FILER-NAME_X-XXPCT.pdf\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s /path/to/filings                # rename in place\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dry-run /path/to/filings      # report only\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -n /path/to/filings             # same as --dry-run\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=mcp /path/to/filings     # MCP stdio server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  FILING_RENAMER_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  FILING_RENAMER_MAXPAGES     Pages read per document\n")
		fmt.Fprintf(os.Stderr, "  FILING_RENAMER_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  FILING_RENAMER_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.DryRun = viper.GetBool("dryrun")
	cfg.MaxPages = viper.GetInt("maxpages")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid. The source directory must
// already exist; an invalid directory aborts before any file is touched.
func (c *Config) Validate() error {
	if c.Mode != ModeRename && c.Mode != ModeMCP {
		return errors.New("mode must be either 'rename' or 'mcp'")
	}

	if c.SourceDirectory == "" {
		return errors.New("source directory is required")
	}

	stat, err := os.Stat(c.SourceDirectory)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s is not a valid directory", c.SourceDirectory)
	}
	if err != nil {
		return fmt.Errorf("cannot access source directory %s: %w", c.SourceDirectory, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%s is not a valid directory", c.SourceDirectory)
	}

	if c.MaxPages <= 0 {
		return errors.New("max pages must be positive")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsMCPMode returns true if the process should serve MCP over stdio.
func (c *Config) IsMCPMode() bool {
	return c.Mode == ModeMCP
}

// IsRenameMode returns true if the process should run a rename batch.
func (c *Config) IsRenameMode() bool {
	return c.Mode == ModeRename
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, SourceDirectory: %s, DryRun: %t, MaxPages: %d, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.SourceDirectory, c.DryRun, c.MaxPages, c.LogLevel, c.MaxFileSize)
}
