package graph

import (
	"context"
	"sync"
	"time"

	"github.com/wearesage/mcp-neo4j/pkg/types"
)

// MockCall records one method invocation on the mock client.
type MockCall struct {
	Method    string
	Args      []any
	Timestamp time.Time
}

// MockClient is an in-memory Client for testing. Responses are configurable
// and every call is recorded for verification. A fresh mock behaves like a
// reachable store with an empty schema.
type MockClient struct {
	mu sync.RWMutex

	closed     bool
	closeCount int
	calls      []MockCall

	introspection types.Introspection
	runResults    [][]map[string]any

	verifyError     error
	introspectError error
	runError        error
	closeError      error
}

// NewMockClient creates a mock client in the open state.
func NewMockClient() *MockClient {
	return &MockClient{
		calls:      make([]MockCall, 0),
		runResults: make([][]map[string]any, 0),
	}
}

// VerifyConnectivity records the call and returns the configured error.
func (m *MockClient) VerifyConnectivity(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("VerifyConnectivity")

	if m.closed {
		return ErrClosed
	}
	return m.verifyError
}

// IntrospectSchema records the call and returns the configured introspection
// snapshot. With nothing configured it returns an empty, orphan-free
// snapshot, matching a store with no data.
func (m *MockClient) IntrospectSchema(ctx context.Context) (types.Introspection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("IntrospectSchema")

	if m.closed {
		return types.Introspection{}, ErrClosed
	}
	if m.introspectError != nil {
		return types.Introspection{}, m.introspectError
	}

	return types.Introspection{
		NodeCounts:     copyTypeCounts(m.introspection.NodeCounts),
		NodeProperties: m.introspection.NodeProperties.Clone(),
		RelCounts:      copyTypeCounts(m.introspection.RelCounts),
		RelProperties:  m.introspection.RelProperties.Clone(),
	}, nil
}

// Run records the call with its query and parameters, then returns the next
// configured result set (FIFO). With nothing queued it returns an empty row
// list.
func (m *MockClient) Run(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Run", query, params)

	if m.closed {
		return nil, ErrClosed
	}
	if m.runError != nil {
		return nil, m.runError
	}

	if len(m.runResults) > 0 {
		rows := m.runResults[0]
		m.runResults = m.runResults[1:]
		return rows, nil
	}
	return []map[string]any{}, nil
}

// Close records the call and marks the mock closed. Like the real client it
// is idempotent; CloseCount exposes how often it was invoked.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close")
	m.closeCount++

	if m.closeError != nil {
		return m.closeError
	}

	m.closed = true
	return nil
}

// SetIntrospection configures what IntrospectSchema should return.
func (m *MockClient) SetIntrospection(in types.Introspection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.introspection = in
}

// AddRunResult queues one result set for Run to return.
func (m *MockClient) AddRunResult(rows []map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runResults = append(m.runResults, rows)
}

// SetVerifyError configures VerifyConnectivity to fail.
func (m *MockClient) SetVerifyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyError = err
}

// SetIntrospectError configures IntrospectSchema to fail.
func (m *MockClient) SetIntrospectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.introspectError = err
}

// SetRunError configures Run to fail.
func (m *MockClient) SetRunError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runError = err
}

// SetCloseError configures Close to fail.
func (m *MockClient) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeError = err
}

// GetCalls returns a copy of all recorded calls.
func (m *MockClient) GetCalls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetCallsByMethod returns all recorded calls to one method.
func (m *MockClient) GetCallsByMethod(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, 0)
	for _, call := range m.calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// CallCount returns the total number of recorded calls.
func (m *MockClient) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// CloseCount returns how many times Close was invoked.
func (m *MockClient) CloseCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closeCount
}

// IsClosed reports whether Close has been called.
func (m *MockClient) IsClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// Reset returns the mock to its initial open state with no recorded calls.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = false
	m.closeCount = 0
	m.calls = make([]MockCall, 0)
	m.introspection = types.Introspection{}
	m.runResults = make([][]map[string]any, 0)
	m.verifyError = nil
	m.introspectError = nil
	m.runError = nil
	m.closeError = nil
}

func (m *MockClient) record(method string, args ...any) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Args:      args,
		Timestamp: time.Now(),
	})
}

func copyTypeCounts(counts []types.TypeCount) []types.TypeCount {
	if counts == nil {
		return nil
	}
	out := make([]types.TypeCount, len(counts))
	copy(out, counts)
	return out
}
