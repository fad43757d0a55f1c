package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wearesage/mcp-neo4j/internal/config"
	"github.com/wearesage/mcp-neo4j/internal/graph"
	"github.com/wearesage/mcp-neo4j/internal/mcp"
)

// closeTimeout bounds driver teardown after the serve context is gone.
const closeTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:   "mcp-neo4j",
	Short: "MCP server exposing a Neo4j graph to AI assistants",
	Long: `mcp-neo4j speaks the Model Context Protocol on stdio and exposes two
tools: describe_schema, which summarizes the graph schema with optional
domain scoping, and run_query, which executes Cypher directly.

Connection settings come from the environment: NEO4J_URI, NEO4J_USERNAME
and NEO4J_PASSWORD are required, NEO4J_DATABASE selects a database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runServe wires config, logger, graph client and MCP server together and
// blocks until the transport closes or a shutdown signal arrives.
func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("mcp-neo4j starting", "version", version)

	client, err := graph.NewNeo4jClient(cfg.Graph)
	if err != nil {
		return err
	}
	defer func() {
		// The serve context is already canceled by the time this runs.
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			logger.Error("failed to close graph client", "error", err)
		}
	}()

	if err := client.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j unreachable: %w", err)
	}
	logger.Info("connected to neo4j", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)

	srv := mcp.NewServer(client, logger)
	logger.Info("mcp server ready, listening on stdio")

	if err := srv.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("server stopped")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("mcp-neo4j %s (built %s)\n", version, buildTime)
	},
}
