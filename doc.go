/*
Package uintx provides UintX, an unsigned integer of arbitrary (but capped)
width, stored as a sequence of fixed-width words. The word type is a type
parameter and may be any of uint8, uint16, uint32 or uint64.

UintX is a value type; all operations return new values.

Simple example:

	u1 := uintx.From[uint8](uint32(0xFFFFFFFF))
	u2 := uintx.From[uint8](uint32(0xFFFFFFFF))
	fmt.Println(u1.Mul(u2))
	// Output: 18446744065119617025

The number of words a UintX may hold is capped, 128 by default. Anything that
would grow past the cap has its most significant words discarded, the same way
a native uint64 wraps. Operations with an 'Overflow' suffix report when that
happened. The cap is passed to constructors with the MaxWords option and is
carried by the value from then on:

	u := uintx.From[uint64](uint64(1), uintx.MaxWords(2))
	u = u.Lsh(127) // fits
	u = u.Lsh(1)   // wraps to 0

UintX can be created from a variety of sources:

	From[W, V](v V, opts ...Option) UintX[W]
	FromWords[W, V](order Order, words []V, opts ...Option) UintX[W]
	FromWordsAccurate[W, V](order Order, words []V, opts ...Option) (out UintX[W], accurate bool)
	Convert[W, V](u UintX[V], opts ...Option) UintX[W]
	FromString[W](s string, opts ...Option) (out UintX[W], accurate bool, err error)
	FromBigInt[W](v *big.Int, opts ...Option) (out UintX[W], accurate bool)
	FromFloat64[W](f float64, opts ...Option) (out UintX[W], inRange bool)

Division by zero is not a panic; both the quotient and the remainder are
defined as zero.

UintX supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package uintx
