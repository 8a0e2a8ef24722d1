package polynomial

import (
	"fmt"
)

// Linear represents A·x + B.
type Linear struct {
	A, B float64
}

// NewLinear returns A·x + B.
func NewLinear(a, b float64) Linear {
	return Linear{A: a, B: b}
}

// NewLinearInt returns A·x + B from integer coefficients.
func NewLinearInt(a, b int32) Linear {
	return Linear{A: float64(a), B: float64(b)}
}

// Evaluate returns A·x + B.
func (l Linear) Evaluate(x float64) float64 {
	return l.A*x + l.B
}

// IsZero returns true if A and B are both zero.
func (l Linear) IsZero() bool {
	return l.A == 0 && l.B == 0
}

// Degree returns 1.
func (l Linear) Degree() int {
	return 1
}

// Kind returns [KindLinear].
func (l Linear) Kind() Kind {
	return KindLinear
}

// Coeffs returns []float64{B, A}.
func (l Linear) Coeffs() []float64 {
	return []float64{l.B, l.A}
}

// Derivative returns A.
func (l Linear) Derivative() Scalar {
	return Scalar(l.A)
}

// Differentiate returns [Linear.Derivative] as a [Polynomial].
func (l Linear) Differentiate() Polynomial {
	return l.Derivative()
}

// Add returns l + other.
func (l Linear) Add(other Linear) Linear {
	return Linear{A: l.A + other.A, B: l.B + other.B}
}

// Sub returns l - other.
func (l Linear) Sub(other Linear) Linear {
	return Linear{A: l.A - other.A, B: l.B - other.B}
}

// AddScalar returns l + c.
func (l Linear) AddScalar(c float64) Linear {
	return Linear{A: l.A, B: l.B + c}
}

// SubScalar returns l - c.
func (l Linear) SubScalar(c float64) Linear {
	return Linear{A: l.A, B: l.B - c}
}

// Mul returns l * other.
func (l Linear) Mul(other Linear) Quadratic {
	return Quadratic{
		A: l.A * other.A,
		B: l.A*other.B + other.A*l.B,
		C: l.B * other.B,
	}
}

// MulScalar returns l * c.
func (l Linear) MulScalar(c float64) Linear {
	return Linear{A: l.A * c, B: l.B * c}
}

// Root returns the solution of A·x + B = 0.
// It returns [ErrNoSolution] if A is zero.
func (l Linear) Root() (float64, error) {
	if l.A == 0 {
		return 0, fmt.Errorf("cannot Root: %v has a zero leading coefficient: %w", l, ErrNoSolution)
	}
	return -l.B / l.A, nil
}

func (l Linear) String() string {
	return formatCoeffs(l.Coeffs())
}
