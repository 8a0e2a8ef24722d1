package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * coeffs[i] with Horner's scheme.
// The coefficients are lifted to the precision of x before accumulation,
// so that the only rounding comes from the big.Float operations.
// An empty coefficient slice evaluates to zero.
func MonomialEval(x *big.Float, coeffs []float64) (y *big.Float) {

	prec := x.Prec()

	y = NewFloat(0.0, prec)

	if len(coeffs) == 0 {
		return
	}

	y.SetFloat64(coeffs[len(coeffs)-1])

	c := NewFloat(0.0, prec)
	for i := len(coeffs) - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, c.SetFloat64(coeffs[i]))
	}

	return
}
