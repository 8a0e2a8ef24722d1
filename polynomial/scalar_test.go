package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {

	t.Run("Evaluate", func(t *testing.T) {
		require.Equal(t, 1.0, Scalar(1).Evaluate(0))
		require.Equal(t, 1.0, Scalar(1).Evaluate(42))
	})

	t.Run("IsZero", func(t *testing.T) {
		require.True(t, Scalar(0).IsZero())
		require.False(t, Scalar(1).IsZero())
	})

	t.Run("Degree", func(t *testing.T) {
		require.Equal(t, 0, Scalar(0).Degree())
	})

	t.Run("Derivative", func(t *testing.T) {
		require.Equal(t, Scalar(0), Scalar(3).Derivative())
	})

	t.Run("Arithmetic", func(t *testing.T) {
		require.Equal(t, Scalar(5), Scalar(2).Add(3))
		require.Equal(t, Scalar(-1), Scalar(2).Sub(3))
		require.Equal(t, Scalar(6), Scalar(2).Mul(3))
	})
}
