package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneralPolynomial(t *testing.T) {

	t.Run("Add", func(t *testing.T) {
		p0 := NewGeneralPolynomial(-2, -3, 0, 4, 6)
		p1 := NewGeneralPolynomial(0, 4, -4.6, 16)
		want := NewGeneralPolynomial(-2, 1, -4.6, 20, 6)
		require.True(t, p0.Add(p1).Equal(want), "%v", p0.Add(p1))
		require.True(t, p1.Add(p0).Equal(want), "%v", p1.Add(p0))
	})

	t.Run("Sub", func(t *testing.T) {
		p0 := NewGeneralPolynomialInt(1, 2, 3)
		p1 := NewGeneralPolynomialInt(1, 1, 1, 1, 1)
		require.Equal(t, []float64{0, 1, 2, -1, -1}, p0.Sub(p1).Coeffs())
		require.Equal(t, []float64{0, -1, -2, 1, 1}, p1.Sub(p0).Coeffs())
	})

	t.Run("Empty", func(t *testing.T) {
		p := NewGeneralPolynomial(1, 2)
		require.True(t, p.Add(NewGeneralPolynomial()).Equal(p))
		require.True(t, NewGeneralPolynomial().Sub(p).Equal(NewGeneralPolynomial(-1, -2)))
		require.Equal(t, 0, NewGeneralPolynomial().Len())
	})

	t.Run("Equal", func(t *testing.T) {
		require.True(t, NewGeneralPolynomialInt(1, 2).Equal(NewGeneralPolynomial(1, 2)))
		require.False(t, NewGeneralPolynomial(1, 2).Equal(NewGeneralPolynomial(1, 2, 0)))
	})

	t.Run("Immutable", func(t *testing.T) {
		coeffs := []float64{1, 2, 3}
		p := NewGeneralPolynomial(coeffs...)
		coeffs[0] = 42

		c := p.Coeffs()
		c[1] = 42

		_ = p.Add(NewGeneralPolynomial(1, 1, 1))

		require.Equal(t, []float64{1, 2, 3}, p.Coeffs())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "6x^4 + 4x^3 - 3x - 2", NewGeneralPolynomial(-2, -3, 0, 4, 6).String())
		require.Equal(t, "0", NewGeneralPolynomial().String())
	})
}
