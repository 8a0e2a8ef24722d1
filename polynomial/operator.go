package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polynomials/utils"
)

// Operation is a binary arithmetic operation between polynomials.
type Operation int

const (
	OpAdd = Operation(iota)
	OpSub
	OpMul
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

type operands struct {
	op          Operation
	left, right Kind
}

// resultKinds is the closed table of defined operations and the kind they produce.
var resultKinds = newResultKinds()

func newResultKinds() map[operands]Kind {
	table := map[operands]Kind{}
	for left := KindScalar; left <= KindQuartic; left++ {
		for right := KindScalar; right <= KindQuartic; right++ {
			table[operands{OpAdd, left, right}] = utils.Max(left, right)
			table[operands{OpSub, left, right}] = utils.Max(left, right)
			if left+right <= KindQuartic {
				table[operands{OpMul, left, right}] = left + right
			}
		}
	}
	return table
}

// ResultKind returns the kind produced by op between the kinds left and right,
// and false if the operation is not defined.
func ResultKind(op Operation, left, right Kind) (k Kind, ok bool) {
	k, ok = resultKinds[operands{op, left, right}]
	return
}

// Promote returns p lifted to the kind k, with zero coefficients for the new powers.
// k must not be lower than p.Kind().
func Promote(p Polynomial, k Kind) (Polynomial, error) {
	if !k.Valid() || k < p.Kind() {
		return nil, fmt.Errorf("cannot Promote: %v to %v: %w", p.Kind(), k, ErrUndefinedOperation)
	}
	return FromCoeffs(k, utils.ZeroPad(p.Coeffs(), k.Degree()+1))
}

// Add returns p + q as the kind of the operand of higher degree.
func Add(p, q Polynomial) (Polynomial, error) {
	return apply(OpAdd, p, q)
}

// Sub returns p - q as the kind of the operand of higher degree.
func Sub(p, q Polynomial) (Polynomial, error) {
	return apply(OpSub, p, q)
}

// Mul returns p * q as the kind whose degree is the sum of the operand degrees.
// It returns [ErrUndefinedOperation] if that degree exceeds [MaxDegree].
func Mul(p, q Polynomial) (Polynomial, error) {
	return apply(OpMul, p, q)
}

func apply(op Operation, p, q Polynomial) (Polynomial, error) {

	k, ok := ResultKind(op, p.Kind(), q.Kind())
	if !ok {
		return nil, fmt.Errorf("cannot %v: %v by %v: %w", op, p.Kind(), q.Kind(), ErrUndefinedOperation)
	}

	var r []float64
	switch op {
	case OpAdd, OpSub:
		n := k.Degree() + 1
		r = utils.ZeroPad(p.Coeffs(), n)
		qc := utils.ZeroPad(q.Coeffs(), n)
		for i := range r {
			if op == OpAdd {
				r[i] += qc[i]
			} else {
				r[i] -= qc[i]
			}
		}
	case OpMul:
		r = convolve(p.Coeffs(), q.Coeffs())
	}

	return FromCoeffs(k, r)
}

// convolve returns the coefficients of the product of the polynomials
// given by ascending coefficients a and b.
func convolve(a, b []float64) (r []float64) {
	r = make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			r[i+j] += a[i] * b[j]
		}
	}
	return
}
