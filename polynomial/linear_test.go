package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {

	t.Run("Evaluate", func(t *testing.T) {
		require.Equal(t, 7.0, NewLinear(2, 1).Evaluate(3))
	})

	t.Run("NewLinearInt", func(t *testing.T) {
		require.Equal(t, NewLinear(-3, 2147483647), NewLinearInt(-3, 2147483647))
	})

	t.Run("Add/Linear", func(t *testing.T) {
		require.Equal(t, NewLinear(2.5, 10), NewLinear(1, 7.4).Add(NewLinear(1.5, 2.6)))
	})

	t.Run("Add/Scalar", func(t *testing.T) {
		require.Equal(t, NewLinear(1, 10), NewLinear(1, 3).AddScalar(7))
	})

	t.Run("Sub/Linear", func(t *testing.T) {
		require.Equal(t, NewLinear(-5, 2), NewLinear(10, 5).Sub(NewLinear(15, 3)))
	})

	t.Run("Sub/Scalar", func(t *testing.T) {
		require.Equal(t, NewLinear(1, 2), NewLinear(1, 7).SubScalar(5))
	})

	t.Run("Mul/Linear", func(t *testing.T) {
		require.Equal(t, NewQuadratic(8, 22, 15), NewLinear(2, 3).Mul(NewLinear(4, 5)))
	})

	t.Run("Mul/Scalar", func(t *testing.T) {
		require.Equal(t, NewLinear(8, 12), NewLinear(2, 3).MulScalar(4))
	})

	t.Run("Degree", func(t *testing.T) {
		require.Equal(t, 1, NewLinear(0, 0).Degree())
	})

	t.Run("IsZero", func(t *testing.T) {
		require.True(t, NewLinear(0, 0).IsZero())
		require.False(t, NewLinear(1, 0).IsZero())
		require.False(t, NewLinear(0, 1).IsZero())
	})

	t.Run("Root", func(t *testing.T) {
		root, err := NewLinearInt(1, 2).Root()
		require.NoError(t, err)
		require.Equal(t, -2.0, root)

		root, err = NewLinear(4, -2).Root()
		require.NoError(t, err)
		require.Equal(t, 0.5, root)
	})

	t.Run("Root/Degenerate", func(t *testing.T) {
		_, err := NewLinear(0, 2).Root()
		require.ErrorIs(t, err, ErrNoSolution)

		_, err = NewLinear(0, 0).Root()
		require.ErrorIs(t, err, ErrNoSolution)
	})

	t.Run("Derivative", func(t *testing.T) {
		require.Equal(t, Scalar(2), NewLinearInt(2, 3).Derivative())
	})
}
