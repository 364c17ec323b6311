package uintx

const (
	// DefaultMaxWords is the capacity used when no MaxWords option is given.
	DefaultMaxWords = 128

	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)
