package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_Defaults(t *testing.T) {
	d := StandardDefaults()

	t.Run("all fields blank produces full defaults", func(t *testing.T) {
		req, err := Fields{}.Assemble(d)
		require.NoError(t, err)

		assert.Equal(t, DefaultGoal, req.Goal)
		assert.Equal(t, "topological_winding", req.OptimizationTarget)
		assert.Equal(t, float64(0), req.TargetValue)
		assert.Equal(t, 5, req.MaxSteps)
		assert.Equal(t, map[string]interface{}{}, req.Context)
	})

	t.Run("whitespace-only fields default too", func(t *testing.T) {
		req, err := Fields{
			Goal:               "   ",
			OptimizationTarget: "\t",
			TargetValue:        " ",
			MaxSteps:           "",
			Context:            "  ",
		}.Assemble(d)
		require.NoError(t, err)

		assert.Equal(t, DefaultGoal, req.Goal)
		assert.Equal(t, DefaultOptimizationTarget, req.OptimizationTarget)
		assert.Equal(t, 5, req.MaxSteps)
		assert.Empty(t, req.Context)
	})

	t.Run("each field defaults independently", func(t *testing.T) {
		req, err := Fields{
			Goal:        "Minimize coherence drift",
			TargetValue: "not-a-number",
			MaxSteps:    "12",
		}.Assemble(d)
		require.NoError(t, err)

		assert.Equal(t, "Minimize coherence drift", req.Goal)
		assert.Equal(t, DefaultOptimizationTarget, req.OptimizationTarget)
		assert.Equal(t, float64(0), req.TargetValue, "invalid numeric input falls back silently")
		assert.Equal(t, 12, req.MaxSteps)
	})

	t.Run("configured defaults win over built-ins", func(t *testing.T) {
		custom := Defaults{
			Goal:               "Custom goal",
			OptimizationTarget: "quaternion_coherence",
			TargetValue:        1.5,
			MaxSteps:           9,
		}
		req, err := Fields{}.Assemble(custom)
		require.NoError(t, err)

		assert.Equal(t, "Custom goal", req.Goal)
		assert.Equal(t, "quaternion_coherence", req.OptimizationTarget)
		assert.Equal(t, 1.5, req.TargetValue)
		assert.Equal(t, 9, req.MaxSteps)
	})
}

func TestAssemble_NumericCoercion(t *testing.T) {
	d := StandardDefaults()

	t.Run("numeric strings parse", func(t *testing.T) {
		req, err := Fields{TargetValue: "9", MaxSteps: "3"}.Assemble(d)
		require.NoError(t, err)

		assert.Equal(t, float64(9), req.TargetValue)
		assert.Equal(t, 3, req.MaxSteps)
	})

	t.Run("float target values parse", func(t *testing.T) {
		req, err := Fields{TargetValue: "-2.75"}.Assemble(d)
		require.NoError(t, err)
		assert.Equal(t, -2.75, req.TargetValue)
	})

	t.Run("fractional step count falls back", func(t *testing.T) {
		req, err := Fields{MaxSteps: "3.5"}.Assemble(d)
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxSteps, req.MaxSteps)
	})
}

func TestAssemble_Context(t *testing.T) {
	d := StandardDefaults()

	t.Run("valid context object passes through", func(t *testing.T) {
		req, err := Fields{Context: `{"seed": 42, "note": "run-7"}`}.Assemble(d)
		require.NoError(t, err)

		assert.Equal(t, float64(42), req.Context["seed"])
		assert.Equal(t, "run-7", req.Context["note"])
	})

	t.Run("malformed context is a hard error", func(t *testing.T) {
		_, err := Fields{Context: `{"seed": }`}.Assemble(d)
		require.Error(t, err)
	})

	t.Run("non-object context is rejected", func(t *testing.T) {
		_, err := Fields{Context: `[1, 2, 3]`}.Assemble(d)
		require.Error(t, err)
	})

	t.Run("context error does not mask other fields", func(t *testing.T) {
		// The request is discarded wholesale on a context failure.
		req, err := Fields{Goal: "g", Context: "{{"}.Assemble(d)
		require.Error(t, err)
		assert.Empty(t, req.Goal)
	})
}
