package polynomial

import (
	"fmt"
)

const (
	// DefaultPrecisionLogPrec is the default precision in bits of the reference evaluation.
	DefaultPrecisionLogPrec = 256
	// DefaultPrecisionSamples is the default number of sampled evaluation points.
	DefaultPrecisionSamples = 1024
	// MinPrecisionLogPrec is the precision of float64, below which the reference is meaningless.
	MinPrecisionLogPrec = 53
	// MaxPrecisionKeySize is the maximum size of a sampling key.
	MaxPrecisionKeySize = 64
)

// DefaultPrecisionInterval is the default interval over which evaluation points are sampled.
var DefaultPrecisionInterval = [2]float64{-1, 1}

// PrecisionParametersLiteral is a literal representation of the parameters of [GetPrecisionStats].
// Zero fields are substituted with their default value by [NewPrecisionParametersFromLiteral]:
//   - LogPrec: [DefaultPrecisionLogPrec]
//   - Interval: [DefaultPrecisionInterval]
//   - Samples: [DefaultPrecisionSamples]
//   - Key: derived from the coefficients of the evaluated polynomial.
type PrecisionParametersLiteral struct {
	LogPrec  uint       `json:",omitempty"`
	Interval [2]float64 `json:",omitempty"`
	Samples  int        `json:",omitempty"`
	Key      []byte     `json:",omitempty"`
}

// PrecisionParameters are the checked parameters of [GetPrecisionStats].
// See [PrecisionParametersLiteral] for user-specified parameters.
type PrecisionParameters struct {
	logPrec  uint
	interval [2]float64
	samples  int
	key      []byte
}

// NewPrecisionParametersFromLiteral instantiates a set of [PrecisionParameters] from
// a [PrecisionParametersLiteral], substituting defaults for zero fields. It returns the
// empty parameters and a non-nil error if the literal is invalid.
func NewPrecisionParametersFromLiteral(paramDef PrecisionParametersLiteral) (params PrecisionParameters, err error) {

	if paramDef.LogPrec == 0 {
		paramDef.LogPrec = DefaultPrecisionLogPrec
	}

	if paramDef.Interval == [2]float64{} {
		paramDef.Interval = DefaultPrecisionInterval
	}

	if paramDef.Samples == 0 {
		paramDef.Samples = DefaultPrecisionSamples
	}

	if paramDef.LogPrec < MinPrecisionLogPrec {
		return PrecisionParameters{}, fmt.Errorf("cannot NewPrecisionParametersFromLiteral: LogPrec=%d is smaller than %d", paramDef.LogPrec, MinPrecisionLogPrec)
	}

	if paramDef.Samples < 0 {
		return PrecisionParameters{}, fmt.Errorf("cannot NewPrecisionParametersFromLiteral: Samples=%d is negative", paramDef.Samples)
	}

	if !(paramDef.Interval[0] < paramDef.Interval[1]) {
		return PrecisionParameters{}, fmt.Errorf("cannot NewPrecisionParametersFromLiteral: Interval=%v is empty", paramDef.Interval)
	}

	if len(paramDef.Key) > MaxPrecisionKeySize {
		return PrecisionParameters{}, fmt.Errorf("cannot NewPrecisionParametersFromLiteral: len(Key)=%d exceeds %d bytes", len(paramDef.Key), MaxPrecisionKeySize)
	}

	params = PrecisionParameters{
		logPrec:  paramDef.LogPrec,
		interval: paramDef.Interval,
		samples:  paramDef.Samples,
	}

	if paramDef.Key != nil {
		params.key = make([]byte, len(paramDef.Key))
		copy(params.key, paramDef.Key)
	}

	return
}

// LogPrec returns the precision in bits of the reference evaluation.
func (p PrecisionParameters) LogPrec() uint {
	return p.logPrec
}

// Interval returns the interval over which evaluation points are sampled.
func (p PrecisionParameters) Interval() [2]float64 {
	return p.interval
}

// Samples returns the number of sampled evaluation points.
func (p PrecisionParameters) Samples() int {
	return p.samples
}

// Key returns a copy of the sampling key, or nil if the key is derived from the evaluated polynomial.
func (p PrecisionParameters) Key() (key []byte) {
	if p.key == nil {
		return nil
	}
	key = make([]byte, len(p.key))
	copy(key, p.key)
	return
}

// ParametersLiteral returns the [PrecisionParametersLiteral] of the parameters.
func (p PrecisionParameters) ParametersLiteral() PrecisionParametersLiteral {
	return PrecisionParametersLiteral{
		LogPrec:  p.logPrec,
		Interval: p.interval,
		Samples:  p.samples,
		Key:      p.Key(),
	}
}
