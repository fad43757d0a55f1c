package mcp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wearesage/mcp-neo4j/internal/graph"
)

const (
	// ServerName is the MCP server name
	ServerName = "mcp-neo4j"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	client graph.Client
	logger *slog.Logger
}

// NewServer creates a new MCP server instance around an already-constructed
// graph client. The client's lifetime belongs to the caller; Serve never
// closes it.
func NewServer(client graph.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:    mcpServer,
		client: client,
		logger: logger,
	}

	s.registerTools()
	return s
}

// Serve runs the MCP server on stdio until the transport closes or the
// context is canceled. Stdout carries the protocol; all logging goes to
// stderr.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(s.mcp)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(describeSchemaTool(), s.handleDescribeSchema)
	s.mcp.AddTool(runQueryTool(), s.handleRunQuery)
}

// requestLogger returns a logger scoped to one tool invocation. The request
// id ties the start and finish lines of a call together.
func (s *Server) requestLogger(tool string) *slog.Logger {
	return s.logger.With("tool", tool, "request_id", uuid.NewString())
}
