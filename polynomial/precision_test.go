package polynomial

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestPrecisionParameters(t *testing.T) {

	t.Run("Defaults", func(t *testing.T) {
		params, err := NewPrecisionParametersFromLiteral(PrecisionParametersLiteral{})
		require.NoError(t, err)
		require.Equal(t, uint(DefaultPrecisionLogPrec), params.LogPrec())
		require.Equal(t, DefaultPrecisionInterval, params.Interval())
		require.Equal(t, DefaultPrecisionSamples, params.Samples())
		require.Nil(t, params.Key())
	})

	t.Run("JSON", func(t *testing.T) {
		var lit PrecisionParametersLiteral
		require.NoError(t, json.Unmarshal([]byte(`{"LogPrec":128,"Interval":[-8,8],"Samples":16}`), &lit))

		params, err := NewPrecisionParametersFromLiteral(lit)
		require.NoError(t, err)
		require.Equal(t, PrecisionParametersLiteral{LogPrec: 128, Interval: [2]float64{-8, 8}, Samples: 16}, params.ParametersLiteral())
	})

	t.Run("Key", func(t *testing.T) {
		key := []byte{1, 2, 3}
		params, err := NewPrecisionParametersFromLiteral(PrecisionParametersLiteral{Key: key})
		require.NoError(t, err)
		key[0] = 42
		require.Equal(t, []byte{1, 2, 3}, params.Key())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, lit := range []PrecisionParametersLiteral{
			{LogPrec: 32},
			{Samples: -1},
			{Interval: [2]float64{1, -1}},
			{Interval: [2]float64{1, 1}},
			{Key: make([]byte, MaxPrecisionKeySize+1)},
		} {
			_, err := NewPrecisionParametersFromLiteral(lit)
			require.Error(t, err, "%+v", lit)
		}
	})
}

func TestGetPrecisionStats(t *testing.T) {

	params, err := NewPrecisionParametersFromLiteral(PrecisionParametersLiteral{Samples: 256, Interval: [2]float64{-4, 4}})
	require.NoError(t, err)

	t.Run("Exact", func(t *testing.T) {
		// constants are evaluated without rounding
		prec, err := GetPrecisionStats(Scalar(3.5), params)
		require.NoError(t, err)
		require.Equal(t, 256, prec.Samples)
		require.Equal(t, float64(params.LogPrec()), prec.MinPrecision)
		require.Equal(t, float64(params.LogPrec()), prec.MedianPrecision)
		require.Equal(t, 0.0, prec.MaxDelta)
		require.Equal(t, 0.0, prec.STDDelta)
	})

	t.Run("Quartic", func(t *testing.T) {
		prec, err := GetPrecisionStats(NewQuartic(0.1, -0.3, 1.7, 2.9, -0.7), params)
		require.NoError(t, err)
		require.Equal(t, 256, prec.Samples)
		require.LessOrEqual(t, prec.MinPrecision, prec.MedianPrecision)
		require.LessOrEqual(t, prec.MedianPrecision, prec.MaxPrecision)
		require.LessOrEqual(t, prec.MaxDelta, 1e-10)
		require.Greater(t, prec.MinPrecision, 30.0)
		require.NotEmpty(t, prec.String())
	})

	t.Run("Deterministic", func(t *testing.T) {
		p := NewCubic(1.1, -2.2, 3.3, -4.4)
		prec0, err := GetPrecisionStats(p, params)
		require.NoError(t, err)
		prec1, err := GetPrecisionStats(p, params)
		require.NoError(t, err)
		require.True(t, cmp.Equal(prec0, prec1))

		keyed, err := NewPrecisionParametersFromLiteral(PrecisionParametersLiteral{Samples: 256, Interval: [2]float64{-4, 4}, Key: []byte("seed")})
		require.NoError(t, err)
		prec2, err := GetPrecisionStats(p, keyed)
		require.NoError(t, err)
		prec3, err := GetPrecisionStats(p, keyed)
		require.NoError(t, err)
		require.True(t, cmp.Equal(prec2, prec3), cmp.Diff(prec2, prec3))

		// different sampling points, comparable precision
		require.True(t, cmp.Equal(prec0.MaxDelta, prec2.MaxDelta, cmpopts.EquateApprox(0, 1e-12)))
	})

	t.Run("NonFinite", func(t *testing.T) {
		_, err := GetPrecisionStats(NewLinear(math.NaN(), 1), params)
		require.Error(t, err)

		_, err = GetPrecisionStats(NewQuadratic(math.MaxFloat64, 0, 0), params)
		require.Error(t, err)
	})
}
