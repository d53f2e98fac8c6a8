// Package mcp exposes the rename pipeline as Model Context Protocol tools
// over standard I/O.
package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a3tai/filing-renamer/internal/config"
	"github.com/a3tai/filing-renamer/internal/extract"
	"github.com/a3tai/filing-renamer/internal/filename"
	"github.com/a3tai/filing-renamer/internal/pdf"
	"github.com/a3tai/filing-renamer/internal/renamer"
)

// Server represents the MCP server instance.
type Server struct {
	config    *config.Config
	reader    *pdf.Reader
	validator *pdf.Validator
	search    *pdf.Search
	catalog   *extract.Catalog
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance over the extraction pipeline.
func NewServer(cfg *config.Config, reader *pdf.Reader, validator *pdf.Validator, search *pdf.Search, catalog *extract.Catalog) (*Server, error) {
	if reader == nil || validator == nil || search == nil {
		return nil, fmt.Errorf("pdf collaborators cannot be nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		reader:    reader,
		validator: validator,
		search:    search,
		catalog:   catalog,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	extractMetadataTool := mcp.NewTool(
		"filing_extract_metadata",
		mcp.WithDescription("Extract filing date, type, ticker, filer name, and ownership percentage from a SEC filing PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(extractMetadataTool, s.handleExtractMetadata)

	previewRenameTool := mcp.NewTool(
		"filing_preview_rename",
		mcp.WithDescription("Compute the canonical filename a SEC filing PDF would be renamed to, without touching the filesystem"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(previewRenameTool, s.handlePreviewRename)

	renameDirectoryTool := mcp.NewTool(
		"filing_rename_directory",
		mcp.WithDescription("Rename every SEC filing PDF in a directory to its canonical name, skipping collisions"),
		mcp.WithString("directory",
			mcp.Description("Directory to process (uses the configured directory if empty)"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report planned renames without mutating the filesystem (default true)"),
		),
	)
	s.mcpServer.AddTool(renameDirectoryTool, s.handleRenameDirectory)

	validateFileTool := mcp.NewTool(
		"filing_validate_file",
		mcp.WithDescription("Validate that a file is a structurally readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)
}

// Handler functions

func (s *Server) handleExtractMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r := s.newRenamer(io.Discard)
	meta, newName, err := r.Preview(path, s.config.MaxPages)
	if err != nil && !errors.Is(err, filename.ErrMissingDate) && !errors.Is(err, filename.ErrMissingFilingType) {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Metadata for: %s\n", path)
	responseText += fmt.Sprintf("Filing date: %s\n", formatOptionalDate(meta))
	responseText += fmt.Sprintf("Filing type: %s\n", orAbsent(meta.FilingType))
	responseText += fmt.Sprintf("Ticker: %s\n", orAbsent(meta.Ticker))
	responseText += fmt.Sprintf("Filer: %s\n", orAbsent(meta.Filer))
	responseText += fmt.Sprintf("Ownership: %s\n", orAbsent(meta.OwnershipPercent))
	if newName != "" {
		responseText += fmt.Sprintf("Canonical name: %s\n", newName)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePreviewRename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r := s.newRenamer(io.Discard)
	_, newName, err := r.Preview(path, s.config.MaxPages)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Would rename to: %s", newName)), nil
}

func (s *Server) handleRenameDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	directory := s.config.SourceDirectory
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	// Mutation over MCP is opt-in; dry-run unless explicitly disabled.
	dryRun := true
	if v, ok := args["dry_run"].(bool); ok {
		dryRun = v
	}

	var report bytes.Buffer
	r := s.newRenamer(&report)
	summary, err := r.Run(renamer.Options{
		Directory: directory,
		DryRun:    dryRun,
		MaxPages:  s.config.MaxPages,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Renamed: %d, Skipped: %d\n\n", summary.Renamed, summary.Skipped)
	responseText += report.String()

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.validator.ValidateFile(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %v", path, err)
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) newRenamer(out io.Writer) *renamer.Renamer {
	return renamer.New(s.reader, s.validator, s.search, s.catalog, out)
}

func orAbsent(v string) string {
	if v == "" {
		return "(absent)"
	}
	return v
}

func formatOptionalDate(meta extract.Metadata) string {
	if !meta.HasFilingDate {
		return "(absent)"
	}
	return meta.FilingDate.Format("2006-01-02")
}

// Run starts the MCP server over standard I/O.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting filing renamer MCP server in stdio mode")
		log.Printf("Source directory: %s", s.config.SourceDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
