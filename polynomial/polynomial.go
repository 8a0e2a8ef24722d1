// Package polynomial implements low-degree polynomials over float64 as distinct value types.
//
// The fixed-degree types [Scalar], [Linear], [Quadratic], [Cubic] and [Quartic] form a promotion
// lattice ordered by degree (see [Kind]). Adding or subtracting two of them yields the type of the
// operand of higher degree, and multiplying them yields the type whose degree is the sum of the
// operand degrees, up to [Quartic]. Each type exposes these combinations as typed methods, and the
// functions [Add], [Sub] and [Mul] provide the same operations over the [Polynomial] interface.
//
// [GeneralPolynomial] is an independent variable-length container supporting only addition and
// subtraction.
//
// All values are immutable: operations never modify their receiver or arguments.
package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is returned when root finding is attempted on a polynomial
	// whose leading coefficient is zero.
	ErrNoSolution = errors.New("no solution")

	// ErrNoRealRoots is returned when a quadratic has a negative discriminant.
	ErrNoRealRoots = errors.New("no real roots")

	// ErrUndefinedOperation is returned when an operation between two kinds
	// has no representable result.
	ErrUndefinedOperation = errors.New("undefined operation")
)

// Kind identifies a fixed-degree polynomial type.
// Kinds are totally ordered by degree.
type Kind int

const (
	KindScalar = Kind(iota)
	KindLinear
	KindQuadratic
	KindCubic
	KindQuartic
)

// MaxDegree is the highest degree representable by a fixed-degree type.
const MaxDegree = int(KindQuartic)

// Degree returns the structural degree of the kind.
func (k Kind) Degree() int {
	return int(k)
}

// Valid returns true if k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindScalar && k <= KindQuartic
}

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindLinear:
		return "Linear"
	case KindQuadratic:
		return "Quadratic"
	case KindCubic:
		return "Cubic"
	case KindQuartic:
		return "Quartic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Polynomial is the contract shared by all the fixed-degree types.
type Polynomial interface {
	// Evaluate returns the value of the polynomial at x.
	Evaluate(x float64) float64
	// IsZero returns true if all the coefficients are zero.
	IsZero() bool
	// Degree returns the structural degree of the type,
	// regardless of the value of its coefficients.
	Degree() int
	// Kind returns the position of the type in the promotion lattice.
	Kind() Kind
	// Coeffs returns a new slice with the coefficients by ascending power.
	// The slice has length Degree()+1.
	Coeffs() []float64
	// Differentiate returns the derivative as a Polynomial.
	Differentiate() Polynomial

	fmt.Stringer
}

// Differentiable is a [Polynomial] whose derivative has the concrete type D.
type Differentiable[D Polynomial] interface {
	Polynomial
	Derivative() D
}

// Tangent returns the tangent line of p at x0.
func Tangent[P Differentiable[D], D Polynomial](p P, x0 float64) Linear {
	slope := p.Derivative().Evaluate(x0)
	return Linear{A: slope, B: p.Evaluate(x0) - slope*x0}
}

// NthDerivative returns the n-th derivative of p.
// The derivative of a [Scalar] is the zero [Scalar], so n may exceed the degree of p.
func NthDerivative(p Polynomial, n int) Polynomial {
	for i := 0; i < n; i++ {
		p = p.Differentiate()
	}
	return p
}

// FromCoeffs returns the fixed-degree polynomial of kind k with the given
// coefficients by ascending power. len(coeffs) must be k.Degree()+1.
func FromCoeffs(k Kind, coeffs []float64) (Polynomial, error) {

	if !k.Valid() {
		return nil, fmt.Errorf("cannot FromCoeffs: invalid kind %v: %w", k, ErrUndefinedOperation)
	}

	if len(coeffs) != k.Degree()+1 {
		return nil, fmt.Errorf("cannot FromCoeffs: kind %v requires %d coefficients but %d were given", k, k.Degree()+1, len(coeffs))
	}

	switch k {
	case KindScalar:
		return Scalar(coeffs[0]), nil
	case KindLinear:
		return Linear{A: coeffs[1], B: coeffs[0]}, nil
	case KindQuadratic:
		return Quadratic{A: coeffs[2], B: coeffs[1], C: coeffs[0]}, nil
	case KindCubic:
		return Cubic{A: coeffs[3], B: coeffs[2], C: coeffs[1], D: coeffs[0]}, nil
	default:
		return Quartic{A: coeffs[4], B: coeffs[3], C: coeffs[2], D: coeffs[1], E: coeffs[0]}, nil
	}
}
