package uintx

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order describes the order of an array of words passed to FromWords or
// returned by UintX.Words.
type Order int

const (
	// Ascending arrays hold the least significant word first.
	Ascending Order = iota

	// Descending arrays hold the most significant word first.
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// From creates a UintX from a native unsigned integer of any width.
//
// From panics if the width of V cannot be represented in the configured
// number of words; the check is on the type, not the value, so
// From[uint8](uint64(1), MaxWords(4)) panics even though 1 would fit.
func From[W Word, V constraints.Unsigned](v V, opts ...Option) UintX[W] {
	c := newConfig(opts)
	vb, wb := bitsOf[V](), wordBits[W]()
	if need := int((vb + wb - 1) / wb); need > c.maxWords {
		panic(fmt.Errorf("uintx: %d-bit value needs %d words of %d bits, max is %d", vb, need, wb, c.maxWords))
	}
	out, _ := fromWords[W](Descending, []V{v}, c)
	return out
}

// FromWords creates a UintX from an array of words of any unsigned type.
// The width of V is significant: FromWords[uint8](Ascending, []uint16{1, 2})
// is 0x00020001, not 0x0201.
//
// The bit width of V must be a multiple or a factor of the bit width of W,
// otherwise FromWords panics. Words that exceed the configured capacity are
// discarded from the most significant end; see FromWordsAccurate.
func FromWords[W Word, V constraints.Unsigned](order Order, words []V, opts ...Option) UintX[W] {
	out, _ := fromWords[W](order, words, newConfig(opts))
	return out
}

// FromWordsAccurate is FromWords, but also reports whether every non-zero
// word fitted within the configured capacity.
func FromWordsAccurate[W Word, V constraints.Unsigned](order Order, words []V, opts ...Option) (out UintX[W], accurate bool) {
	out, truncated := fromWords[W](order, words, newConfig(opts))
	return out, !truncated
}

// Convert re-buckets u into words of a different width. The result keeps u's
// capacity (in words, not bits) unless opts override it.
func Convert[W, V Word](u UintX[V], opts ...Option) UintX[W] {
	out, _ := fromWords[W](Descending, u.words(), configFor(u.maxWords(), opts))
	return out
}

func fromWords[W Word, V constraints.Unsigned](order Order, words []V, c config) (out UintX[W], truncated bool) {
	parts, truncated := normalize(regroup[W](order, words), c.maxWords)
	return UintX[W]{parts: parts, max: c.maxWords}, truncated
}

// regroup redistributes the bits of words into words of type W, returned
// most significant first. One of the two bit widths must divide the other.
func regroup[W Word, V constraints.Unsigned](order Order, words []V) []W {
	src := make([]V, len(words))
	switch order {
	case Descending:
		copy(src, words)
	case Ascending:
		for i, v := range words {
			src[len(words)-1-i] = v
		}
	default:
		panic(fmt.Errorf("uintx: unknown order %d", order))
	}

	vb, wb := bitsOf[V](), wordBits[W]()

	switch {
	case vb == wb:
		out := make([]W, len(src))
		for i, v := range src {
			out[i] = W(v)
		}
		return out

	case wb > vb:
		if wb%vb != 0 {
			panic(fmt.Errorf("uintx: %d-bit words are not aligned to %d-bit words", wb, vb))
		}
		ratio := int(wb / vb)
		src = alignWords(src, ratio)
		out := make([]W, len(src)/ratio)
		for i, v := range src {
			shift := uint(ratio-1-i%ratio) * vb
			out[i/ratio] |= W(uint64(v) << shift)
		}
		return out

	default:
		if vb%wb != 0 {
			panic(fmt.Errorf("uintx: %d-bit words are not aligned to %d-bit words", vb, wb))
		}
		ratio := int(vb / wb)
		out := make([]W, len(src)*ratio)
		for i, v := range src {
			for k := 0; k < ratio; k++ {
				shift := uint(ratio-1-k) * wb
				out[i*ratio+k] = W(uint64(v) >> shift)
			}
		}
		return out
	}
}
