package uintx

type (
	UintX8  = UintX[uint8]
	UintX16 = UintX[uint16]
	UintX32 = UintX[uint32]
	UintX64 = UintX[uint64]
)

// UintX is an unsigned integer stored as a sequence of W-sized words, most
// significant first. The zero value is 0 with the default capacity.
type UintX[W Word] struct {
	parts []W
	max   int
}

// Max returns the largest UintX the configured capacity can hold.
func Max[W Word](opts ...Option) UintX[W] {
	c := newConfig(opts)
	parts := make([]W, c.maxWords)
	for i := range parts {
		parts[i] = ^W(0)
	}
	return UintX[W]{parts: parts, max: c.maxWords}
}

// Zero returns 0 with the configured capacity.
func Zero[W Word](opts ...Option) UintX[W] {
	return UintX[W]{parts: []W{0}, max: newConfig(opts).maxWords}
}

func (u UintX[W]) words() []W {
	if len(u.parts) == 0 {
		return []W{0}
	}
	return u.parts
}

func (u UintX[W]) maxWords() int {
	if u.max <= 0 {
		return DefaultMaxWords
	}
	return u.max
}

// with wraps raw words computed from u, normalizing them with u's capacity.
func (u UintX[W]) with(words []W) (v UintX[W], truncated bool) {
	v.max = u.maxWords()
	v.parts, truncated = normalize(words, v.max)
	return v, truncated
}

func (u UintX[W]) zero() UintX[W] {
	return UintX[W]{parts: []W{0}, max: u.maxWords()}
}

// MaxWords returns the capacity of u in words.
func (u UintX[W]) MaxWords() int { return u.maxWords() }

// WordCount returns the number of words u currently occupies.
func (u UintX[W]) WordCount() int { return len(u.words()) }

// Words returns a copy of the words of u in the requested order.
func (u UintX[W]) Words(order Order) []W {
	p := u.words()
	out := make([]W, len(p))
	switch order {
	case Descending:
		copy(out, p)
	case Ascending:
		for i, w := range p {
			out[len(p)-1-i] = w
		}
	default:
		panic("uintx: unknown order")
	}
	return out
}

func (u UintX[W]) IsZero() bool { return isZeroWords(u.words()) }

func (u UintX[W]) IsEven() bool {
	p := u.words()
	return p[len(p)-1]&1 == 0
}

func (u UintX[W]) IsOdd() bool {
	p := u.words()
	return p[len(p)-1]&1 == 1
}

// BitWidth returns the number of bits in the words u occupies. This includes
// any leading zero bits in the most significant word.
func (u UintX[W]) BitWidth() uint { return uint(len(u.words())) * wordBits[W]() }

// BitLen returns the minimum number of bits required to represent u; BitLen
// of 0 is 0.
func (u UintX[W]) BitLen() uint { return bitLen(u.words()) }

// LeadingZeros returns the number of zero bits above the most significant
// set bit, within BitWidth.
func (u UintX[W]) LeadingZeros() uint { return leadingZeros(u.words()) }

// TrailingZeros returns the number of zero bits below the least significant
// set bit. TrailingZeros of 0 is BitWidth.
func (u UintX[W]) TrailingZeros() uint { return trailingZeros(u.words()) }

// Bit returns the value of the i'th bit of u, where bit 0 is the least
// significant.
func (u UintX[W]) Bit(i uint) uint {
	wb := wordBits[W]()
	w := wordAt(u.words(), int(i/wb))
	return uint(w>>(i%wb)) & 1
}

// AsUint64 truncates u to fit in a uint64. See IsUint64() if you want to
// check before you convert.
func (u UintX[W]) AsUint64() (v uint64) {
	p := u.words()
	wb := wordBits[W]()
	for i := 0; uint(i)*wb < 64 && i < len(p); i++ {
		v |= uint64(wordAt(p, i)) << (uint(i) * wb)
	}
	return v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u UintX[W]) IsUint64() bool { return u.BitLen() <= 64 }

func (u UintX[W]) Cmp(n UintX[W]) int { return cmpWords(u.words(), n.words()) }

func (u UintX[W]) Equal(n UintX[W]) bool { return u.Cmp(n) == 0 }

func (u UintX[W]) GreaterThan(n UintX[W]) bool { return u.Cmp(n) > 0 }

func (u UintX[W]) GreaterOrEqualTo(n UintX[W]) bool { return u.Cmp(n) >= 0 }

func (u UintX[W]) LessThan(n UintX[W]) bool { return u.Cmp(n) < 0 }

func (u UintX[W]) LessOrEqualTo(n UintX[W]) bool { return u.Cmp(n) <= 0 }

// Not complements every word u occupies. Unlike every other operation the
// result is not trimmed, so it has the same BitWidth as u.
func (u UintX[W]) Not() (out UintX[W]) {
	p := u.words()
	parts := make([]W, len(p))
	for i, w := range p {
		parts[i] = ^w
	}
	return UintX[W]{parts: parts, max: u.maxWords()}
}

// And is treated as if the shorter operand had infinite leading zeros, so
// the result is never longer than the shorter of u and n.
func (u UintX[W]) And(n UintX[W]) (out UintX[W]) {
	a, b := u.words(), n.words()
	cnt := len(a)
	if len(b) < cnt {
		cnt = len(b)
	}
	parts := make([]W, cnt)
	for i := 0; i < cnt; i++ {
		parts[cnt-1-i] = wordAt(a, i) & wordAt(b, i)
	}
	out, _ = u.with(parts)
	return out
}

func (u UintX[W]) Or(n UintX[W]) (out UintX[W]) {
	a, b := u.words(), n.words()
	cnt := len(a)
	if len(b) > cnt {
		cnt = len(b)
	}
	parts := make([]W, cnt)
	for i := 0; i < cnt; i++ {
		parts[cnt-1-i] = wordAt(a, i) | wordAt(b, i)
	}
	out, _ = u.with(parts)
	return out
}

func (u UintX[W]) Xor(n UintX[W]) (out UintX[W]) {
	a, b := u.words(), n.words()
	cnt := len(a)
	if len(b) > cnt {
		cnt = len(b)
	}
	parts := make([]W, cnt)
	for i := 0; i < cnt; i++ {
		parts[cnt-1-i] = wordAt(a, i) ^ wordAt(b, i)
	}
	out, _ = u.with(parts)
	return out
}

// Lsh shifts u left by n bits. Bits shifted beyond the capacity of u are
// discarded silently, as with a native unsigned integer.
func (u UintX[W]) Lsh(n uint) (v UintX[W]) {
	v, _ = u.LshOverflow(n)
	return v
}

// LshOverflow is Lsh, but also reports whether any set bits were discarded.
func (u UintX[W]) LshOverflow(n uint) (v UintX[W], overflow bool) {
	p := trimWords(u.words())
	if n == 0 || isZeroWords(p) {
		v, _ = u.with(cloneWords(p))
		return v, false
	}
	if n/wordBits[W]() >= uint(u.maxWords()) {
		// Every bit lands beyond the capacity.
		return u.zero(), true
	}
	return u.with(shlWords(p, n))
}

// Rsh shifts u right by n bits. Shifting by BitWidth or more yields 0.
func (u UintX[W]) Rsh(n uint) (v UintX[W]) {
	if n == 0 {
		return UintX[W]{parts: cloneWords(u.words()), max: u.maxWords()}
	}
	v, _ = u.with(shrWords(u.words(), n))
	return v
}
