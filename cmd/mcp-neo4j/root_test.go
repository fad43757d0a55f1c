package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearesage/mcp-neo4j/internal/config"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "mcp-neo4j", rootCmd.Use)
	assert.NotNil(t, rootCmd.RunE)
	assert.True(t, rootCmd.SilenceUsage)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "version")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, []string{})

	assert.Contains(t, buf.String(), "mcp-neo4j")
	assert.Contains(t, buf.String(), version)
}

func TestSetupLogger_Levels(t *testing.T) {
	ctx := context.Background()

	logger := setupLogger("debug", "text")
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger = setupLogger("error", "json")
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))

	logger = setupLogger("bogus", "bogus")
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo), "unknown level falls back to info")
}

func TestRunServe_MissingEnvFailsFast(t *testing.T) {
	t.Setenv(config.EnvURI, "")
	t.Setenv(config.EnvUsername, "")
	t.Setenv(config.EnvPassword, "")

	rootCmd.SetContext(context.Background())
	err := runServe(rootCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingEnv)
}

func TestRunServe_RejectsUnsupportedURIScheme(t *testing.T) {
	t.Setenv(config.EnvURI, "http://localhost:7687")
	t.Setenv(config.EnvUsername, "neo4j")
	t.Setenv(config.EnvPassword, "secret")

	rootCmd.SetContext(context.Background())
	err := runServe(rootCmd, nil)
	require.Error(t, err, "driver construction rejects non-bolt schemes before any dial")
}
