package polynomial

// Quartic represents A·x^4 + B·x^3 + C·x^2 + D·x + E.
type Quartic struct {
	A, B, C, D, E float64
}

// NewQuartic returns A·x^4 + B·x^3 + C·x^2 + D·x + E.
func NewQuartic(a, b, c, d, e float64) Quartic {
	return Quartic{A: a, B: b, C: c, D: d, E: e}
}

// NewQuarticInt returns A·x^4 + B·x^3 + C·x^2 + D·x + E from integer coefficients.
func NewQuarticInt(a, b, c, d, e int32) Quartic {
	return Quartic{A: float64(a), B: float64(b), C: float64(c), D: float64(d), E: float64(e)}
}

// Evaluate returns A·x^4 + B·x^3 + C·x^2 + D·x + E.
func (q Quartic) Evaluate(x float64) float64 {
	return (((q.A*x+q.B)*x+q.C)*x+q.D)*x + q.E
}

// IsZero returns true if all the coefficients are zero.
func (q Quartic) IsZero() bool {
	return q.A == 0 && q.B == 0 && q.C == 0 && q.D == 0 && q.E == 0
}

// Degree returns 4.
func (q Quartic) Degree() int {
	return 4
}

// Kind returns [KindQuartic].
func (q Quartic) Kind() Kind {
	return KindQuartic
}

// Coeffs returns []float64{E, D, C, B, A}.
func (q Quartic) Coeffs() []float64 {
	return []float64{q.E, q.D, q.C, q.B, q.A}
}

// Derivative returns 4A·x^3 + 3B·x^2 + 2C·x + D.
func (q Quartic) Derivative() Cubic {
	return Cubic{A: 4 * q.A, B: 3 * q.B, C: 2 * q.C, D: q.D}
}

// Differentiate returns [Quartic.Derivative] as a [Polynomial].
func (q Quartic) Differentiate() Polynomial {
	return q.Derivative()
}

// Add returns q + other.
func (q Quartic) Add(other Quartic) Quartic {
	return Quartic{A: q.A + other.A, B: q.B + other.B, C: q.C + other.C, D: q.D + other.D, E: q.E + other.E}
}

// Sub returns q - other.
func (q Quartic) Sub(other Quartic) Quartic {
	return Quartic{A: q.A - other.A, B: q.B - other.B, C: q.C - other.C, D: q.D - other.D, E: q.E - other.E}
}

// AddCubic returns q + c.
func (q Quartic) AddCubic(c Cubic) Quartic {
	return Quartic{A: q.A, B: q.B + c.A, C: q.C + c.B, D: q.D + c.C, E: q.E + c.D}
}

// SubCubic returns q - c.
func (q Quartic) SubCubic(c Cubic) Quartic {
	return Quartic{A: q.A, B: q.B - c.A, C: q.C - c.B, D: q.D - c.C, E: q.E - c.D}
}

// AddQuadratic returns q + other.
func (q Quartic) AddQuadratic(other Quadratic) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C + other.A, D: q.D + other.B, E: q.E + other.C}
}

// SubQuadratic returns q - other.
func (q Quartic) SubQuadratic(other Quadratic) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C - other.A, D: q.D - other.B, E: q.E - other.C}
}

// AddLinear returns q + l.
func (q Quartic) AddLinear(l Linear) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C, D: q.D + l.A, E: q.E + l.B}
}

// SubLinear returns q - l.
func (q Quartic) SubLinear(l Linear) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C, D: q.D - l.A, E: q.E - l.B}
}

// AddScalar returns q + s.
func (q Quartic) AddScalar(s float64) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C, D: q.D, E: q.E + s}
}

// SubScalar returns q - s.
func (q Quartic) SubScalar(s float64) Quartic {
	return Quartic{A: q.A, B: q.B, C: q.C, D: q.D, E: q.E - s}
}

// MulScalar returns q * s.
func (q Quartic) MulScalar(s float64) Quartic {
	return Quartic{A: q.A * s, B: q.B * s, C: q.C * s, D: q.D * s, E: q.E * s}
}

func (q Quartic) String() string {
	return formatCoeffs(q.Coeffs())
}
