package graph

import (
	"github.com/wearesage/mcp-neo4j/pkg/types"
)

// Introspection queries. Counts are ordered descending by the store and that
// order is preserved downstream; property keys are deduplicated server-side
// with collect(DISTINCT ...) and again client-side.
const (
	nodeCountQuery    = `MATCH (n) UNWIND labels(n) AS label RETURN label AS name, count(*) AS count ORDER BY count DESC`
	nodePropertyQuery = `MATCH (n) UNWIND labels(n) AS label UNWIND keys(n) AS key RETURN label AS name, collect(DISTINCT key) AS keys`
	relCountQuery     = `MATCH ()-[r]->() RETURN type(r) AS name, count(*) AS count ORDER BY count DESC`
	relPropertyQuery  = `MATCH ()-[r]->() UNWIND keys(r) AS key RETURN type(r) AS name, collect(DISTINCT key) AS keys`
)

// rawIntrospection holds the unprocessed rows of the four queries.
type rawIntrospection struct {
	nodeCounts []map[string]any
	nodeProps  []map[string]any
	relCounts  []map[string]any
	relProps   []map[string]any
}

// buildIntrospection normalizes raw query rows into an Introspection that is
// orphan-free in both directions. Type names are opaque, case-sensitive
// strings: no quoting, escaping, or case folding is applied, so names that
// differ only in case stay distinct entries.
func buildIntrospection(nodeCounts, nodeProps, relCounts, relProps []map[string]any) types.Introspection {
	nodeTC, nodePI := normalizeSide(nodeCounts, nodeProps)
	relTC, relPI := normalizeSide(relCounts, relProps)
	return types.Introspection{
		NodeCounts:     nodeTC,
		NodeProperties: nodePI,
		RelCounts:      relTC,
		RelProperties:  relPI,
	}
}

// normalizeSide merges one count result with one property result. Malformed
// rows (non-string name, missing or negative count) are dropped. Names seen
// only in the property result, which can happen when the store changes
// between the two queries, are appended with a zero count; counted names
// with no observed keys get an empty property set.
func normalizeSide(countRows, propRows []map[string]any) ([]types.TypeCount, types.PropertyIndex) {
	counts := make([]types.TypeCount, 0, len(countRows))
	seen := make(map[string]bool, len(countRows))
	for _, row := range countRows {
		name, ok := row["name"].(string)
		if !ok || seen[name] {
			continue
		}
		count, ok := asInt64(row["count"])
		if !ok || count < 0 {
			continue
		}
		seen[name] = true
		counts = append(counts, types.TypeCount{Name: name, Count: count})
	}

	index := make(types.PropertyIndex, len(counts))
	for _, row := range propRows {
		name, ok := row["name"].(string)
		if !ok {
			continue
		}
		index.Add(name, stringKeys(row["keys"])...)
	}

	for _, tc := range counts {
		if _, ok := index[tc.Name]; !ok {
			index[tc.Name] = []string{}
		}
	}
	for _, row := range propRows {
		name, ok := row["name"].(string)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		counts = append(counts, types.TypeCount{Name: name, Count: 0})
	}

	return counts, index
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// stringKeys extracts the property key list from a collect() value. The
// driver yields []any; fixtures may use []string directly. Non-string
// elements are dropped.
func stringKeys(v any) []string {
	switch keys := v.(type) {
	case []string:
		return keys
	case []any:
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			if s, ok := key.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
