package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat returns the shortest decimal representation of v that
// round-trips, without exponent.
func formatFloat(v float64) string {
	return strings.TrimPrefix(strconv.FormatFloat(v, 'f', -1, 64), "+")
}

// suffix returns the monomial suffix of the given power.
func suffix(power int) string {
	switch power {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return "x^" + strconv.Itoa(power)
	}
}

// formatTerm returns the textual contribution of coeff·suffix.
// Zero coefficients contribute nothing. The leading term carries only a
// unary minus, the others a " + " or " - " separator. A unit magnitude
// coefficient is elided unless the term is the constant one.
func formatTerm(coeff float64, suffix string, leading bool) string {

	if coeff == 0 {
		return ""
	}

	var sb strings.Builder

	switch {
	case coeff < 0 && leading:
		sb.WriteString("-")
	case coeff < 0:
		sb.WriteString(" - ")
	case !leading:
		sb.WriteString(" + ")
	}

	if abs := math.Abs(coeff); abs != 1 || suffix == "" {
		sb.WriteString(formatFloat(abs))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// formatCoeffs renders the coefficients, given by ascending power,
// from the highest to the lowest degree. The zero polynomial renders as "0".
func formatCoeffs(coeffs []float64) string {
	var sb strings.Builder
	for i := len(coeffs) - 1; i >= 0; i-- {
		sb.WriteString(formatTerm(coeffs[i], suffix(i), sb.Len() == 0))
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
