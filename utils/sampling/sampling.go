// Package sampling implements deterministic sampling of evaluation points.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by [KeyFromFloat64s].
const KeySize = 32

// KeyFromFloat64s derives a PRNG key from a list of float64 values, such that
// equal inputs always seed the same stream.
func KeyFromFloat64s(values []float64) []byte {
	hasher := blake3.New()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(len(values)))
	hasher.Write(buf)

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		hasher.Write(buf)
	}

	key := hasher.Sum(nil)
	return key[:KeySize]
}

// RandFloat64 reads 8 bytes from prng and returns a float in [min, max).
func RandFloat64(prng PRNG, min, max float64) (float64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}
	// 53 random bits mapped to [0, 1)
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// RandFloat64Slice returns n floats sampled with [RandFloat64].
func RandFloat64Slice(prng PRNG, n int, min, max float64) (values []float64, err error) {
	values = make([]float64, n)
	for i := range values {
		if values[i], err = RandFloat64(prng, min, max); err != nil {
			return nil, err
		}
	}
	return
}
