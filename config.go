package uintx

import "fmt"

// Option configures a UintX at construction time.
type Option func(c *config)

type config struct {
	maxWords int
}

// MaxWords sets the maximum number of words a UintX may hold. Results that
// would need more words lose their most significant words. n must be at
// least 1.
//
// The capacity travels with the value: the result of a binary operation uses
// the capacity of the receiver.
func MaxWords(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("uintx: max words must be >= 1, found %d", n))
	}
	return func(c *config) { c.maxWords = n }
}

func newConfig(opts []Option) config {
	c := config{maxWords: DefaultMaxWords}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// configFor is newConfig, but seeded with an existing value's capacity.
func configFor(maxWords int, opts []Option) config {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	c := config{maxWords: maxWords}
	for _, o := range opts {
		o(&c)
	}
	return c
}
