package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeParams_FloorsFloats(t *testing.T) {
	got := NormalizeParams(map[string]any{
		"limit": 5.9,
		"skip":  float64(10),
	})

	assert.Equal(t, int64(5), got["limit"])
	assert.Equal(t, int64(10), got["skip"])
}

func TestNormalizeParams_FloorsNegativesTowardMinusInfinity(t *testing.T) {
	got := NormalizeParams(map[string]any{
		"offset": -2.5,
		"delta":  -3.0,
	})

	assert.Equal(t, int64(-3), got["offset"])
	assert.Equal(t, int64(-3), got["delta"])
}

func TestNormalizeParams_RecursesNestedValues(t *testing.T) {
	got := NormalizeParams(map[string]any{
		"filter": map[string]any{
			"min":  1.2,
			"tags": []any{"a", 2.9, map[string]any{"depth": 4.1}},
		},
		"ids": []any{1.0, 2.0, 3.0},
	})

	want := map[string]any{
		"filter": map[string]any{
			"min":  int64(1),
			"tags": []any{"a", int64(2), map[string]any{"depth": int64(4)}},
		},
		"ids": []any{int64(1), int64(2), int64(3)},
	}
	assert.Equal(t, want, got)
}

func TestNormalizeParams_LeavesNonNumericsUntouched(t *testing.T) {
	got := NormalizeParams(map[string]any{
		"name":    "alice",
		"active":  true,
		"note":    nil,
		"already": int64(7),
	})

	assert.Equal(t, "alice", got["name"])
	assert.Equal(t, true, got["active"])
	assert.Nil(t, got["note"])
	assert.Equal(t, int64(7), got["already"])
}

func TestNormalizeParams_NilInput(t *testing.T) {
	assert.Nil(t, NormalizeParams(nil))
}

func TestNormalizeParams_EmptyInput(t *testing.T) {
	got := NormalizeParams(map[string]any{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeParams_DoesNotMutateInput(t *testing.T) {
	nested := map[string]any{"min": 1.2}
	list := []any{2.9}
	in := map[string]any{
		"limit":  5.9,
		"filter": nested,
		"tags":   list,
	}

	_ = NormalizeParams(in)

	assert.Equal(t, 5.9, in["limit"])
	assert.Equal(t, 1.2, nested["min"])
	assert.Equal(t, 2.9, list[0])
}
