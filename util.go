package uintx

type RandSource interface {
	Uint64() uint64
}

// Rand generates a UintX of up to n random words from an external source.
func Rand[W Word](source RandSource, n int, opts ...Option) UintX[W] {
	parts := make([]W, n)
	for i := range parts {
		parts[i] = W(source.Uint64())
	}
	out, _ := fromWords[W](Descending, parts, newConfig(opts))
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference[W Word](a, b UintX[W]) UintX[W] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger[W Word](a, b UintX[W]) UintX[W] {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller[W Word](a, b UintX[W]) UintX[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}
