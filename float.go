package uintx

import (
	"math"
	"math/big"
)

// FromFloat64 creates a UintX from a float64. Any fractional portion will be
// truncated towards zero. Floats too large for the configured capacity are
// clamped to Max and inRange is set to false.
//
// NaN and negative numbers are treated as 0, inRange is set to false.
func FromFloat64[W Word](f float64, opts ...Option) (out UintX[W], inRange bool) {
	c := newConfig(opts)
	if f != f || f < 0 { // (f != f) == NaN
		return UintX[W]{parts: []W{0}, max: c.maxWords}, false

	} else if math.IsInf(f, 1) {
		return Max[W](opts...), false

	} else if f < (1 << 64) {
		out, truncated := fromWords[W](Descending, []uint64{uint64(f)}, c)
		if truncated {
			return Max[W](opts...), false
		}
		return out, true
	}

	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	out, accurate := FromBigInt[W](b, opts...)
	if !accurate {
		return Max[W](opts...), false
	}
	return out, true
}

func FromFloat32[W Word](f float32, opts ...Option) (out UintX[W], inRange bool) {
	return FromFloat64[W](float64(f), opts...)
}

// AsFloat64 returns the nearest float64 to u.
func (u UintX[W]) AsFloat64() float64 {
	if u.IsUint64() {
		return float64(u.AsUint64())
	}
	f, _ := new(big.Float).SetInt(u.AsBigInt()).Float64()
	return f
}
