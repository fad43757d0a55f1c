package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wearesage/mcp-neo4j/internal/config"
	"github.com/wearesage/mcp-neo4j/internal/graph"
)

// QueryFlowTestSuite exercises the run path: parameter normalization, row
// retrieval, serialization and client lifecycle.
type QueryFlowTestSuite struct {
	suite.Suite
	client *graph.MockClient
	ctx    context.Context
}

func (s *QueryFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = graph.NewMockClient()
}

func (s *QueryFlowTestSuite) TestParametersAreFlooredBeforeExecution() {
	raw := map[string]any{
		"limit": 5.9,
		"filter": map[string]any{
			"threshold": -2.5,
			"ids":       []any{1.0, 2.7},
			"name":      "alice",
		},
	}

	_, err := s.client.Run(s.ctx, "MATCH (n) RETURN n LIMIT $limit", graph.NormalizeParams(raw))
	s.Require().NoError(err)

	calls := s.client.GetCallsByMethod("Run")
	s.Require().Len(calls, 1)
	s.Equal(map[string]any{
		"limit": int64(5),
		"filter": map[string]any{
			"threshold": int64(-3),
			"ids":       []any{int64(1), int64(2)},
			"name":      "alice",
		},
	}, calls[0].Args[1])

	// Normalization rebuilds the tree; the caller's map is untouched.
	s.Equal(5.9, raw["limit"])
}

func (s *QueryFlowTestSuite) TestRowsSurviveJSONRoundTrip() {
	s.client.AddRunResult([]map[string]any{
		{"name": "Alice", "age": int64(30)},
		{"name": "Bob", "age": int64(25)},
	})

	rows, err := s.client.Run(s.ctx, "MATCH (p:Person) RETURN p.name AS name, p.age AS age", nil)
	s.Require().NoError(err)

	payload, err := json.MarshalIndent(rows, "", "  ")
	s.Require().NoError(err)

	var decoded []map[string]any
	s.Require().NoError(json.Unmarshal(payload, &decoded))
	s.Len(decoded, 2)
	s.Equal("Alice", decoded[0]["name"])
}

func (s *QueryFlowTestSuite) TestEachCallIsIndependent() {
	s.client.AddRunResult([]map[string]any{{"n": int64(1)}})

	first, err := s.client.Run(s.ctx, "RETURN 1 AS n", nil)
	s.Require().NoError(err)
	s.Len(first, 1)

	second, err := s.client.Run(s.ctx, "RETURN 2 AS n", nil)
	s.Require().NoError(err)
	s.Empty(second, "results configured for one call never leak into the next")

	s.Equal(2, len(s.client.GetCallsByMethod("Run")))
}

func (s *QueryFlowTestSuite) TestTeardownIsIdempotent() {
	s.Require().NoError(s.client.Close(s.ctx))
	s.Require().NoError(s.client.Close(s.ctx))
	s.Equal(2, s.client.CloseCount())

	_, err := s.client.Run(s.ctx, "RETURN 1", nil)
	s.ErrorIs(err, graph.ErrClosed)

	err = s.client.VerifyConnectivity(s.ctx)
	s.ErrorIs(err, graph.ErrClosed)
}

func (s *QueryFlowTestSuite) TestConfigFeedsClientConstruction() {
	s.T().Setenv(config.EnvURI, "bolt://graph.internal:7687")
	s.T().Setenv(config.EnvUsername, "neo4j")
	s.T().Setenv(config.EnvPassword, "secret")
	s.T().Setenv(config.EnvDatabase, "movies")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Require().NoError(cfg.Graph.Validate())
	s.Equal("movies", cfg.Graph.Database)
}

func (s *QueryFlowTestSuite) TestIncompleteConfigNeverReachesTheDriver() {
	s.T().Setenv(config.EnvURI, "bolt://graph.internal:7687")
	s.T().Setenv(config.EnvUsername, "")
	s.T().Setenv(config.EnvPassword, "secret")

	_, err := config.Load()
	s.Require().Error(err)
	s.ErrorIs(err, config.ErrMissingEnv)

	client, err := graph.NewNeo4jClient(graph.Config{URI: "bolt://graph.internal:7687", Password: "secret"})
	s.Require().Error(err)
	s.Nil(client)
	s.ErrorIs(err, graph.ErrMissingUsername)
}

func TestQueryFlowSuite(t *testing.T) {
	suite.Run(t, new(QueryFlowTestSuite))
}
