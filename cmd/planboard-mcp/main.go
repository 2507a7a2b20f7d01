package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"planboard/internal/adapters/filesystem"
	mcpadapter "planboard/internal/adapters/mcp"
	"planboard/internal/adapters/sqlite"
	"planboard/internal/config"
	"planboard/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("planboard-mcp: %v", err)
	}

	boardFlag := flag.String("board", cfg.BoardPath, "path to the board document")
	auditFlag := flag.String("audit-db", cfg.AuditDBPath, "path to the audit database")
	flag.Parse()

	store := filesystem.NewStore(*boardFlag)

	var audit ports.AuditLog
	if a, err := sqlite.Open(*auditFlag); err == nil {
		audit = a
		defer a.Close()
	}

	mcpServer := server.NewMCPServer(
		"planboard-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, audit)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("planboard-mcp: %v", err)
	}
}
