package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/wearesage/mcp-neo4j/pkg/types"
)

// Neo4jClient implements Client against a Neo4j server using the official
// driver. Per-call isolation comes from the driver's session model; the
// client itself holds only the long-lived driver handle.
type Neo4jClient struct {
	config Config
	driver neo4j.DriverWithContext
}

// NewNeo4jClient validates the configuration and constructs the driver. The
// driver does not dial until the first operation; call VerifyConnectivity to
// surface connection and authentication failures at startup.
func NewNeo4jClient(config Config) (*Neo4jClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	driver, err := neo4j.NewDriverWithContext(config.URI, neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	return &Neo4jClient{config: config, driver: driver}, nil
}

// VerifyConnectivity checks reachability and authentication. There is no
// retry policy: the single error return is the whole story.
func (c *Neo4jClient) VerifyConnectivity(ctx context.Context) error {
	if c.driver == nil {
		return ErrClosed
	}
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("verify connectivity to %s: %w", c.config.URI, err)
	}
	return nil
}

// IntrospectSchema runs the four introspection queries inside one read
// transaction on one session, then normalizes the raw rows into an
// orphan-free Introspection. Store ordering (descending by count) is
// preserved.
func (c *Neo4jClient) IntrospectSchema(ctx context.Context) (types.Introspection, error) {
	if c.driver == nil {
		return types.Introspection{}, ErrClosed
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.config.Database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		var raw rawIntrospection
		var err error
		if raw.nodeCounts, err = collectTxRows(ctx, tx, nodeCountQuery); err != nil {
			return nil, err
		}
		if raw.nodeProps, err = collectTxRows(ctx, tx, nodePropertyQuery); err != nil {
			return nil, err
		}
		if raw.relCounts, err = collectTxRows(ctx, tx, relCountQuery); err != nil {
			return nil, err
		}
		if raw.relProps, err = collectTxRows(ctx, tx, relPropertyQuery); err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return types.Introspection{}, fmt.Errorf("introspect schema: %w", err)
	}

	raw := result.(rawIntrospection)
	return buildIntrospection(raw.nodeCounts, raw.nodeProps, raw.relCounts, raw.relProps), nil
}

// Run submits the query with normalized parameters on a fresh session and
// returns the collected rows in result order. Autocommit is used so the
// pass-through works for both reads and writes; the session is closed whether
// or not the query succeeds.
func (c *Neo4jClient) Run(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	if c.driver == nil {
		return nil, ErrClosed
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.config.Database})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, NormalizeParams(params))
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect query results: %w", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return nil, fmt.Errorf("consume query result: %w", err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, recordToRow(record))
	}
	return rows, nil
}

// Close releases the driver. Safe to call repeatedly and on a client whose
// connectivity was never verified.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}
	if err := c.driver.Close(ctx); err != nil {
		return fmt.Errorf("close neo4j driver: %w", err)
	}
	c.driver = nil
	return nil
}

// collectTxRows runs one query inside the managed transaction and converts
// every record into a column-keyed map.
func collectTxRows(ctx context.Context, tx neo4j.ManagedTransaction, query string) ([]map[string]any, error) {
	result, err := tx.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, recordToRow(record))
	}
	return rows, nil
}

func recordToRow(record *neo4j.Record) map[string]any {
	row := make(map[string]any, len(record.Keys))
	for i, key := range record.Keys {
		row[key] = record.Values[i]
	}
	return row
}
