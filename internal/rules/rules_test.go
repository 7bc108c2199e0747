package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/eskalero/internal/score"
)

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("Plain Arithmetic", func(t *testing.T) {
		out, err := registry.EvalScore("3 * 5")
		assert.NoError(t, err)
		assert.Equal(t, 15, out)
	})

	t.Run("Face Values", func(t *testing.T) {
		out, err := registry.Eval("face('A') + face('9')", map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})

	t.Run("Combo Matches Scoring Rules", func(t *testing.T) {
		want, err := score.Combination(score.Poker, false, score.Faces{Primary: score.FaceAce, Secondary: score.FaceQueen})
		require.NoError(t, err)

		out, err := registry.EvalScore("combo('P', false, 'A', 'D')")
		assert.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("Grande Without Kicker", func(t *testing.T) {
		out, err := registry.EvalScore("combo('grande', true, 'A')")
		assert.NoError(t, err)
		assert.Equal(t, 170, out)
	})

	t.Run("Straight Toggle", func(t *testing.T) {
		out, err := registry.EvalScore("straight(true, true)")
		assert.NoError(t, err)
		assert.Equal(t, 50, out)
	})

	t.Run("Count Sum", func(t *testing.T) {
		out, err := registry.EvalScore("count('K', 3) + count('A', 1)")
		assert.NoError(t, err)
		assert.Equal(t, 21, out)
	})

	t.Run("Invalid Face", func(t *testing.T) {
		_, err := registry.EvalScore("combo('P', false, 'Z', 'K')")
		assert.Error(t, err)
	})

	t.Run("Numeric Row Is Not A Combo", func(t *testing.T) {
		_, err := registry.EvalScore("combo('K', false, 'K')")
		assert.Error(t, err)
	})

	t.Run("Negative Result", func(t *testing.T) {
		_, err := registry.EvalScore("3 - 10")
		assert.Error(t, err)
	})

	t.Run("Non Integer Result", func(t *testing.T) {
		_, err := registry.EvalScore("'abc'")
		assert.Error(t, err)
	})

	t.Run("Syntax Error", func(t *testing.T) {
		_, err := registry.EvalScore("3 *")
		assert.Error(t, err)
	})
}
