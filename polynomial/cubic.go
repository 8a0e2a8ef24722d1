package polynomial

// Cubic represents A·x^3 + B·x^2 + C·x + D.
type Cubic struct {
	A, B, C, D float64
}

// NewCubic returns A·x^3 + B·x^2 + C·x + D.
func NewCubic(a, b, c, d float64) Cubic {
	return Cubic{A: a, B: b, C: c, D: d}
}

// NewCubicInt returns A·x^3 + B·x^2 + C·x + D from integer coefficients.
func NewCubicInt(a, b, c, d int32) Cubic {
	return Cubic{A: float64(a), B: float64(b), C: float64(c), D: float64(d)}
}

// Evaluate returns A·x^3 + B·x^2 + C·x + D.
func (c Cubic) Evaluate(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// IsZero returns true if all the coefficients are zero.
func (c Cubic) IsZero() bool {
	return c.A == 0 && c.B == 0 && c.C == 0 && c.D == 0
}

// Degree returns 3.
func (c Cubic) Degree() int {
	return 3
}

// Kind returns [KindCubic].
func (c Cubic) Kind() Kind {
	return KindCubic
}

// Coeffs returns []float64{D, C, B, A}.
func (c Cubic) Coeffs() []float64 {
	return []float64{c.D, c.C, c.B, c.A}
}

// Derivative returns 3A·x^2 + 2B·x + C.
func (c Cubic) Derivative() Quadratic {
	return Quadratic{A: 3 * c.A, B: 2 * c.B, C: c.C}
}

// Differentiate returns [Cubic.Derivative] as a [Polynomial].
func (c Cubic) Differentiate() Polynomial {
	return c.Derivative()
}

// Add returns c + other.
func (c Cubic) Add(other Cubic) Cubic {
	return Cubic{A: c.A + other.A, B: c.B + other.B, C: c.C + other.C, D: c.D + other.D}
}

// Sub returns c - other.
func (c Cubic) Sub(other Cubic) Cubic {
	return Cubic{A: c.A - other.A, B: c.B - other.B, C: c.C - other.C, D: c.D - other.D}
}

// AddQuadratic returns c + q.
func (c Cubic) AddQuadratic(q Quadratic) Cubic {
	return Cubic{A: c.A, B: c.B + q.A, C: c.C + q.B, D: c.D + q.C}
}

// SubQuadratic returns c - q.
func (c Cubic) SubQuadratic(q Quadratic) Cubic {
	return Cubic{A: c.A, B: c.B - q.A, C: c.C - q.B, D: c.D - q.C}
}

// AddLinear returns c + l.
func (c Cubic) AddLinear(l Linear) Cubic {
	return Cubic{A: c.A, B: c.B, C: c.C + l.A, D: c.D + l.B}
}

// SubLinear returns c - l.
func (c Cubic) SubLinear(l Linear) Cubic {
	return Cubic{A: c.A, B: c.B, C: c.C - l.A, D: c.D - l.B}
}

// AddScalar returns c + s.
func (c Cubic) AddScalar(s float64) Cubic {
	return Cubic{A: c.A, B: c.B, C: c.C, D: c.D + s}
}

// SubScalar returns c - s.
func (c Cubic) SubScalar(s float64) Cubic {
	return Cubic{A: c.A, B: c.B, C: c.C, D: c.D - s}
}

// MulLinear returns c * l.
func (c Cubic) MulLinear(l Linear) Quartic {
	r := convolve(c.Coeffs(), l.Coeffs())
	return Quartic{A: r[4], B: r[3], C: r[2], D: r[1], E: r[0]}
}

// MulScalar returns c * s.
func (c Cubic) MulScalar(s float64) Cubic {
	return Cubic{A: c.A * s, B: c.B * s, C: c.C * s, D: c.D * s}
}

func (c Cubic) String() string {
	return formatCoeffs(c.Coeffs())
}
