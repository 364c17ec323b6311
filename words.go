package uintx

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the set of fixed-width unsigned integers a UintX can be built from.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitsOf returns the bit width of any unsigned integer type.
func bitsOf[V constraints.Unsigned]() uint {
	return uint(bits.Len64(uint64(^V(0))))
}

func wordBits[W Word]() uint {
	return bitsOf[W]()
}

// trimWords strips redundant most significant zero words. The result is
// never empty.
func trimWords[W Word](words []W) []W {
	if len(words) == 0 {
		return []W{0}
	}
	i := 0
	for i < len(words)-1 && words[i] == 0 {
		i++
	}
	return words[i:]
}

// clipWords drops the most significant words in excess of limit.
func clipWords[W Word](words []W, limit int) (out []W, clipped bool) {
	if len(words) <= limit {
		return words, false
	}
	return words[len(words)-limit:], true
}

// alignWords left-pads words with zeros until its length is a multiple of size.
func alignWords[V constraints.Unsigned](words []V, size int) []V {
	rem := len(words) % size
	if rem == 0 {
		return words
	}
	out := make([]V, size-rem+len(words))
	copy(out[size-rem:], words)
	return out
}

// normalize is the funnel every constructed or computed word sequence passes
// through: trim leading zeros, clip to capacity, trim again. truncated is true
// if non-zero words were discarded.
func normalize[W Word](words []W, limit int) (out []W, truncated bool) {
	out, truncated = clipWords(trimWords(words), limit)
	if truncated {
		out = trimWords(out)
	}
	return out, truncated
}

// cloneWords copies words so a result never shares its operand's backing array.
func cloneWords[W Word](words []W) []W {
	out := make([]W, len(words))
	copy(out, words)
	return out
}

func isZeroWords[W Word](words []W) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// leadingZeros counts the zero bits above the most significant set bit,
// including any zero words.
func leadingZeros[W Word](words []W) uint {
	wb := wordBits[W]()
	var n uint
	for _, w := range words {
		if w != 0 {
			return n + uint(bits.LeadingZeros64(uint64(w))) - (64 - wb)
		}
		n += wb
	}
	return n
}

func trailingZeros[W Word](words []W) uint {
	wb := wordBits[W]()
	var n uint
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return n + uint(bits.TrailingZeros64(uint64(words[i])))
		}
		n += wb
	}
	return n
}

func bitLen[W Word](words []W) uint {
	return uint(len(words))*wordBits[W]() - leadingZeros(words)
}

func cmpWords[W Word](a, b []W) int {
	a, b = trimWords(a), trimWords(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addWord returns x + y + carry, where carry is 0 or 1.
func addWord[W Word](x, y, carry W) (sum, carryOut W) {
	s := x + y
	if s < x {
		carryOut = 1
	}
	sum = s + carry
	if sum < s {
		carryOut = 1
	}
	return sum, carryOut
}

// subWord returns x - y - borrow, where borrow is 0 or 1.
func subWord[W Word](x, y, borrow W) (diff, borrowOut W) {
	d := x - y
	if x < y {
		borrowOut = 1
	}
	diff = d - borrow
	if d < borrow {
		borrowOut = 1
	}
	return diff, borrowOut
}

// wordAt indexes words from the least significant end, returning 0 past the
// most significant word.
func wordAt[W Word](words []W, i int) W {
	if i >= len(words) {
		return 0
	}
	return words[len(words)-1-i]
}

// shlWords shifts left without any capacity limit; the result has enough
// words to hold every bit.
func shlWords[W Word](words []W, n uint) []W {
	wb := wordBits[W]()
	q, r := int(n/wb), n%wb
	out := make([]W, len(words)+q+1)
	for i := len(words) - 1; i >= 0; i-- {
		out[i+1] |= words[i] << r
		if r > 0 {
			out[i] |= words[i] >> (wb - r)
		}
	}
	return out
}

func shrWords[W Word](words []W, n uint) []W {
	wb := wordBits[W]()
	if n >= uint(len(words))*wb {
		return []W{0}
	}
	q, r := int(n/wb), n%wb
	out := make([]W, len(words)-q)
	for i := range out {
		v := words[i] >> r
		if i > 0 && r > 0 {
			v |= words[i-1] << (wb - r)
		}
		out[i] = v
	}
	return out
}

func addWords[W Word](a, b []W) []W {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]W, len(a)+1)
	var carry W
	for i := 0; i < len(a); i++ {
		out[len(out)-1-i], carry = addWord(wordAt(a, i), wordAt(b, i), carry)
	}
	out[0] = carry
	return out
}

// subWords computes a - b modulo 2^(max(len(a), len(b)) * wordBits).
func subWords[W Word](a, b []W) (out []W, borrowed bool) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out = make([]W, n)
	var borrow W
	for i := 0; i < n; i++ {
		out[n-1-i], borrow = subWord(wordAt(a, i), wordAt(b, i), borrow)
	}
	return out, borrow != 0
}
