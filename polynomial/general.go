package polynomial

import (
	"github.com/tuneinsight/polynomials/utils"
)

// GeneralPolynomial is a variable-length list of coefficients by ascending power.
// Leading and trailing zeros are kept as given.
type GeneralPolynomial struct {
	coeffs []float64
}

// NewGeneralPolynomial returns the polynomial sum coeffs[i]·x^i.
// The coefficients are copied.
func NewGeneralPolynomial(coeffs ...float64) GeneralPolynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return GeneralPolynomial{coeffs: c}
}

// NewGeneralPolynomialInt returns the polynomial sum coeffs[i]·x^i from integer coefficients.
func NewGeneralPolynomialInt(coeffs ...int32) GeneralPolynomial {
	return GeneralPolynomial{coeffs: utils.ConvertSlice[int32, float64](coeffs)}
}

// Len returns the number of coefficients.
func (p GeneralPolynomial) Len() int {
	return len(p.coeffs)
}

// Coeffs returns a copy of the coefficients by ascending power.
func (p GeneralPolynomial) Coeffs() []float64 {
	return utils.ZeroPad(p.coeffs, 0)
}

// Add returns p + other. The shorter operand is padded with zeros,
// so that the result has the length of the longer one.
func (p GeneralPolynomial) Add(other GeneralPolynomial) GeneralPolynomial {
	n := utils.Max(p.Len(), other.Len())
	r, o := utils.ZeroPad(p.coeffs, n), utils.ZeroPad(other.coeffs, n)
	for i := range r {
		r[i] += o[i]
	}
	return GeneralPolynomial{coeffs: r}
}

// Sub returns p - other. The shorter operand is padded with zeros,
// so that the result has the length of the longer one.
func (p GeneralPolynomial) Sub(other GeneralPolynomial) GeneralPolynomial {
	n := utils.Max(p.Len(), other.Len())
	r, o := utils.ZeroPad(p.coeffs, n), utils.ZeroPad(other.coeffs, n)
	for i := range r {
		r[i] -= o[i]
	}
	return GeneralPolynomial{coeffs: r}
}

// Equal returns true if p and other have the same coefficients and the same length.
func (p GeneralPolynomial) Equal(other GeneralPolynomial) bool {
	return utils.EqualSlice(p.coeffs, other.coeffs)
}

func (p GeneralPolynomial) String() string {
	return formatCoeffs(p.coeffs)
}
