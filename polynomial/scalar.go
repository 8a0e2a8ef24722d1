package polynomial

// Scalar is a bare number seen as a polynomial of degree 0.
type Scalar float64

// Evaluate returns s for any x.
func (s Scalar) Evaluate(x float64) float64 {
	return float64(s)
}

// IsZero returns true if s == 0.
func (s Scalar) IsZero() bool {
	return s == 0
}

// Degree returns 0.
func (s Scalar) Degree() int {
	return 0
}

// Kind returns [KindScalar].
func (s Scalar) Kind() Kind {
	return KindScalar
}

// Coeffs returns []float64{s}.
func (s Scalar) Coeffs() []float64 {
	return []float64{float64(s)}
}

// Derivative returns the zero Scalar.
func (s Scalar) Derivative() Scalar {
	return 0
}

// Differentiate returns [Scalar.Derivative] as a [Polynomial].
func (s Scalar) Differentiate() Polynomial {
	return s.Derivative()
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	return s + other
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	return s - other
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	return s * other
}

func (s Scalar) String() string {
	return formatCoeffs(s.Coeffs())
}
