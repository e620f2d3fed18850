package main

import (
	"context"
	"flag"
	"io"
	"log"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "tracklist/internal/adapters/mcp"
	"tracklist/internal/app"
	"tracklist/internal/config"
	"tracklist/internal/logging"
)

func main() {
	designsFlag := flag.String("designs", "", "design directories (path list), overrides the config")
	managerFlag := flag.Bool("manager", false, "expose rename, delete and index tools")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("tracklist-mcp: %v", err)
	}
	if *designsFlag != "" {
		cfg.Designs.Dirs = filepath.SplitList(*designsFlag)
	}

	// stdout carries the protocol; only a configured log file is written.
	logger, closeLog, err := logging.New(cfg.Log, io.Discard)
	if err != nil {
		log.Fatalf("tracklist-mcp: %v", err)
	}
	defer closeLog()

	stack, err := app.Open(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("tracklist-mcp: %v", err)
	}
	defer stack.Close()

	mcpServer := server.NewMCPServer(
		"tracklist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.ReadDeps{
		Repo:   stack.Repo,
		Rides:  stack.Rides,
		Format: stack.Format,
		Log:    logger,
	})
	if cfg.Manager || *managerFlag {
		mcpadapter.RegisterWriteTools(mcpServer, stack.Repo, stack.DesignIndex())
	}

	logger.WithField("dirs", stack.Files.Dirs()).Info("serving MCP on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.WithError(err).Error("stdio server stopped")
		log.Fatalf("tracklist-mcp: %v", err)
	}
}
