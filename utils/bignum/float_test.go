package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {

	t.Run("NewFloat", func(t *testing.T) {
		for _, x := range []interface{}{3, int32(3), int64(3), 3.0, big.NewInt(3), big.NewFloat(3)} {
			y := NewFloat(x, 128)
			require.Equal(t, uint(128), y.Prec())
			f, _ := y.Float64()
			require.Equal(t, 3.0, f)
		}

		require.Panics(t, func() { NewFloat("3", 64) })
	})

	t.Run("Log", func(t *testing.T) {
		y, _ := Log(NewFloat(1.4142135623730951, 53)).Float64()
		require.InDelta(t, math.Log(1.4142135623730951), y, 1e-15)
	})

	t.Run("Log2Of", func(t *testing.T) {
		for _, x := range []float64{0.125, 1, 3, 1024} {
			y, _ := Log2Of(NewFloat(x, 128)).Float64()
			require.InDelta(t, math.Log2(x), y, 1e-15)
		}
	})
}

func TestMonomialEval(t *testing.T) {

	t.Run("Empty", func(t *testing.T) {
		y, _ := MonomialEval(NewFloat(2.0, 64), nil).Float64()
		require.Equal(t, 0.0, y)
	})

	t.Run("Constant", func(t *testing.T) {
		y, _ := MonomialEval(NewFloat(2.0, 64), []float64{-7}).Float64()
		require.Equal(t, -7.0, y)
	})

	t.Run("Quartic", func(t *testing.T) {
		// 5 + 4x + 3x^2 + 2x^3 + x^4 at x = 6
		y, _ := MonomialEval(NewFloat(6.0, 128), []float64{5, 4, 3, 2, 1}).Float64()
		require.Equal(t, 1296.0+432.0+108.0+24.0+5.0, y)
	})

	t.Run("Precision", func(t *testing.T) {
		// 1e16 + x - 4e16 x^2 at x = 0.5 cancels to 0.5, which float64 Horner loses.
		y, _ := MonomialEval(NewFloat(0.5, 256), []float64{1e16, 1, -4e16}).Float64()
		require.Equal(t, 0.5, y)
	})
}
