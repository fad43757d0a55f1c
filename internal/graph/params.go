package graph

import "math"

// NormalizeParams prepares caller-supplied query parameters for the driver.
// JSON decoding turns every number into a float64, which breaks Cypher
// clauses that require integers (SKIP, LIMIT, list indexing), so every
// float64 anywhere in the parameter tree is floored to an int64. The floor
// applies to all numeric values, fractional or not, and to negatives:
// 5.9 becomes 5, -2.5 becomes -3. Maps and slices are rebuilt, the input is
// never mutated, and non-numeric values pass through untouched.
func NormalizeParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for key, value := range params {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case float64:
		return int64(math.Floor(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = normalizeValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return value
	}
}
