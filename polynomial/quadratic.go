package polynomial

import (
	"fmt"
	"math"
)

// Quadratic represents A·x^2 + B·x + C.
type Quadratic struct {
	A, B, C float64
}

// NewQuadratic returns A·x^2 + B·x + C.
func NewQuadratic(a, b, c float64) Quadratic {
	return Quadratic{A: a, B: b, C: c}
}

// NewQuadraticInt returns A·x^2 + B·x + C from integer coefficients.
func NewQuadraticInt(a, b, c int32) Quadratic {
	return Quadratic{A: float64(a), B: float64(b), C: float64(c)}
}

// Evaluate returns A·x^2 + B·x + C.
func (q Quadratic) Evaluate(x float64) float64 {
	return (q.A*x+q.B)*x + q.C
}

// IsZero returns true if all the coefficients are zero.
func (q Quadratic) IsZero() bool {
	return q.A == 0 && q.B == 0 && q.C == 0
}

// Degree returns 2.
func (q Quadratic) Degree() int {
	return 2
}

// Kind returns [KindQuadratic].
func (q Quadratic) Kind() Kind {
	return KindQuadratic
}

// Coeffs returns []float64{C, B, A}.
func (q Quadratic) Coeffs() []float64 {
	return []float64{q.C, q.B, q.A}
}

// Derivative returns 2A·x + B.
func (q Quadratic) Derivative() Linear {
	return Linear{A: 2 * q.A, B: q.B}
}

// Differentiate returns [Quadratic.Derivative] as a [Polynomial].
func (q Quadratic) Differentiate() Polynomial {
	return q.Derivative()
}

// Add returns q + other.
func (q Quadratic) Add(other Quadratic) Quadratic {
	return Quadratic{A: q.A + other.A, B: q.B + other.B, C: q.C + other.C}
}

// Sub returns q - other.
func (q Quadratic) Sub(other Quadratic) Quadratic {
	return Quadratic{A: q.A - other.A, B: q.B - other.B, C: q.C - other.C}
}

// AddLinear returns q + l.
func (q Quadratic) AddLinear(l Linear) Quadratic {
	return Quadratic{A: q.A, B: q.B + l.A, C: q.C + l.B}
}

// SubLinear returns q - l.
func (q Quadratic) SubLinear(l Linear) Quadratic {
	return Quadratic{A: q.A, B: q.B - l.A, C: q.C - l.B}
}

// AddScalar returns q + c.
func (q Quadratic) AddScalar(c float64) Quadratic {
	return Quadratic{A: q.A, B: q.B, C: q.C + c}
}

// SubScalar returns q - c.
func (q Quadratic) SubScalar(c float64) Quadratic {
	return Quadratic{A: q.A, B: q.B, C: q.C - c}
}

// Mul returns q * other.
func (q Quadratic) Mul(other Quadratic) Quartic {
	r := convolve(q.Coeffs(), other.Coeffs())
	return Quartic{A: r[4], B: r[3], C: r[2], D: r[1], E: r[0]}
}

// MulLinear returns q * l.
func (q Quadratic) MulLinear(l Linear) Cubic {
	r := convolve(q.Coeffs(), l.Coeffs())
	return Cubic{A: r[3], B: r[2], C: r[1], D: r[0]}
}

// MulScalar returns q * c.
func (q Quadratic) MulScalar(c float64) Quadratic {
	return Quadratic{A: q.A * c, B: q.B * c, C: q.C * c}
}

// Discriminant returns B^2 - 4AC.
func (q Quadratic) Discriminant() float64 {
	return q.B*q.B - 4*q.A*q.C
}

// Roots returns the two real solutions of A·x^2 + B·x + C = 0, the larger first.
// A double root is returned twice.
// It returns [ErrNoSolution] if A is zero and [ErrNoRealRoots] if the discriminant is negative.
func (q Quadratic) Roots() (roots [2]float64, err error) {

	if q.A == 0 {
		return roots, fmt.Errorf("cannot Roots: %v has a zero leading coefficient: %w", q, ErrNoSolution)
	}

	disc := q.Discriminant()

	if disc < 0 {
		return roots, fmt.Errorf("cannot Roots: discriminant of %v is %v: %w", q, disc, ErrNoRealRoots)
	}

	sqrt := math.Sqrt(disc)

	roots[0] = (-q.B + sqrt) / (2 * q.A)
	roots[1] = (-q.B - sqrt) / (2 * q.A)

	if roots[0] < roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}

	return
}

func (q Quadratic) String() string {
	return formatCoeffs(q.Coeffs())
}
