package polynomial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/polynomials/utils"
	"github.com/tuneinsight/polynomials/utils/bignum"
	"github.com/tuneinsight/polynomials/utils/sampling"
)

// PrecisionStats is a struct storing statistics about the precision of the float64
// evaluation of a polynomial with respect to an arbitrary precision reference.
// Precisions are given in bits, as log2(1/delta).
type PrecisionStats struct {
	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64

	MinDelta    float64
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	Samples int
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬────────┐
│    Log2 │ PREC   │
├─────────┼────────┤
│MIN Prec │ %6.2f │
│MAX Prec │ %6.2f │
│AVG Prec │ %6.2f │
│MED Prec │ %6.2f │
└─────────┴────────┘
Err STD : %5.2f Log2 (%d samples)
`,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		math.Log2(prec.STDDelta),
		prec.Samples)
}

// GetPrecisionStats evaluates p with [Polynomial.Evaluate] on points sampled uniformly
// over params.Interval() and compares the results with an evaluation carried with
// params.LogPrec() bits of precision. Points are sampled from a keyed PRNG, so the
// result is deterministic for a given key. If params carries no key, it is derived
// from the coefficients of p.
//
// Exact evaluations are reported with a precision of params.LogPrec() bits.
// It returns an error if p has non-finite coefficients or evaluates to a non-finite value.
func GetPrecisionStats(p Polynomial, params PrecisionParameters) (prec PrecisionStats, err error) {

	coeffs := p.Coeffs()
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return prec, fmt.Errorf("cannot GetPrecisionStats: %v has non-finite coefficients", p)
		}
	}

	key := params.Key()
	if key == nil {
		key = sampling.KeyFromFloat64s(coeffs)
	}

	prng, err := sampling.NewKeyedPRNG(key)
	if err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	interval := params.Interval()

	points, err := sampling.RandFloat64Slice(prng, params.Samples(), interval[0], interval[1])
	if err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	logPrec := params.LogPrec()

	deltas := make([]float64, len(points))
	precs := make([]float64, len(points))

	delta := new(big.Float).SetPrec(logPrec)

	for i, x := range points {

		have := p.Evaluate(x)

		if math.IsNaN(have) || math.IsInf(have, 0) {
			return prec, fmt.Errorf("cannot GetPrecisionStats: %v evaluates to %v at x=%v", p, have, x)
		}

		want := bignum.MonomialEval(bignum.NewFloat(x, logPrec), coeffs)

		delta.Sub(bignum.NewFloat(have, logPrec), want)
		delta.Abs(delta)

		deltas[i], _ = delta.Float64()

		if delta.Sign() == 0 {
			precs[i] = float64(logPrec)
			continue
		}

		log2, _ := bignum.Log2Of(delta).Float64()
		precs[i] = utils.Min(-log2, float64(logPrec))
	}

	prec.Samples = len(points)

	if prec.Samples == 0 {
		return
	}

	if prec.MinPrecision, err = stats.Min(precs); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxPrecision, err = stats.Max(precs); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanPrecision, err = stats.Mean(precs); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianPrecision, err = stats.Median(precs); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MinDelta, err = stats.Min(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxDelta, err = stats.Max(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanDelta, err = stats.Mean(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianDelta, err = stats.Median(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.STDDelta, err = stats.StandardDeviation(deltas); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return
}
