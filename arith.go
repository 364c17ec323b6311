package uintx

func (u UintX[W]) Inc() (v UintX[W]) {
	v, _ = u.with(addWords(u.words(), []W{1}))
	return v
}

func (u UintX[W]) Dec() (v UintX[W]) {
	v, _ = u.SubOverflow(UintX[W]{parts: []W{1}})
	return v
}

func (u UintX[W]) Add(n UintX[W]) (v UintX[W]) {
	v, _ = u.AddOverflow(n)
	return v
}

// AddOverflow adds n to u, reporting overflow if the sum needed more words
// than the capacity of u allows. The most significant words are discarded.
func (u UintX[W]) AddOverflow(n UintX[W]) (v UintX[W], overflow bool) {
	return u.with(addWords(u.words(), n.words()))
}

func (u UintX[W]) Sub(n UintX[W]) (v UintX[W]) {
	v, _ = u.SubOverflow(n)
	return v
}

// SubOverflow subtracts n from u. If n > u, the result wraps around as if
// both were fixed-width integers as wide as the longer of the two, and
// overflow is true:
//
//	UintX8(23) - UintX8(45)  == 0xEA
//	UintX8(23) - UintX8(267) == 0xFF0C
//
func (u UintX[W]) SubOverflow(n UintX[W]) (v UintX[W], overflow bool) {
	parts, borrowed := subWords(trimWords(u.words()), trimWords(n.words()))
	v, truncated := u.with(parts)
	return v, borrowed || truncated
}

func (u UintX[W]) Mul(n UintX[W]) (v UintX[W]) {
	v, _ = u.MulOverflow(n)
	return v
}

// MulOverflow multiplies u by n using binary double-and-add over the bits of
// the smaller operand. If the product needs more words than the capacity of
// u allows, the product is truncated to the low words and overflow is true.
func (u UintX[W]) MulOverflow(n UintX[W]) (v UintX[W], overflow bool) {
	if u.IsZero() || n.IsZero() {
		return u.zero(), false
	}

	limit := u.maxWords()
	large, small := Larger(u, n), Smaller(u, n)

	acc := []W{0}
	shifted, overflow := normalize(large.words(), limit)
	bits := trimWords(small.words())

	for {
		if bits[len(bits)-1]&1 == 1 {
			var truncated bool
			acc, truncated = normalize(addWords(acc, shifted), limit)
			overflow = overflow || truncated
		}

		bits = trimWords(shrWords(bits, 1))
		if isZeroWords(bits) {
			break
		}

		var truncated bool
		shifted, truncated = normalize(shlWords(shifted, 1), limit)
		overflow = overflow || truncated
	}

	v, _ = u.with(acc)
	return v, overflow
}

// Quo returns the quotient u/by. If by == 0, the quotient is 0. Quo
// implements truncated division (like Go).
func (u UintX[W]) Quo(by UintX[W]) (q UintX[W]) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoOverflow is Quo. Unsigned division cannot overflow, so overflow is
// always false.
func (u UintX[W]) QuoOverflow(by UintX[W]) (q UintX[W], overflow bool) {
	q, _ = u.QuoRem(by)
	return q, false
}

// Rem returns the remainder of u%by. If by == 0, the remainder is 0.
func (u UintX[W]) Rem(by UintX[W]) (r UintX[W]) {
	_, r = u.QuoRem(by)
	return r
}

// RemOverflow is Rem. overflow is always false.
func (u UintX[W]) RemOverflow(by UintX[W]) (r UintX[W], overflow bool) {
	_, r = u.QuoRem(by)
	return r, false
}

// QuoRem returns the quotient q and remainder r of u/by.
//
// Division by zero is defined rather than a panic: if by == 0, both q and r
// are 0. For any other divisor:
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
func (u UintX[W]) QuoRem(by UintX[W]) (q, r UintX[W]) {
	num, den := trimWords(u.words()), trimWords(by.words())

	if isZeroWords(den) {
		return u.zero(), u.zero()
	}
	if len(den) == 1 && den[0] == 1 {
		q, _ = u.with(cloneWords(num))
		return q, u.zero()
	}
	if cmpWords(num, den) < 0 {
		r, _ = u.with(cloneWords(num))
		return u.zero(), r // it's 100% remainder
	}

	return u.quorembin(num, den)
}

// quorembin is binary long division: for each bit position the divisor can be
// shifted to without exceeding the dividend, from highest to lowest, subtract
// the shifted divisor from the remainder if it fits and set that bit in the
// quotient.
func (u UintX[W]) quorembin(num, den []W) (q, r UintX[W]) {
	wb := wordBits[W]()
	shift := bitLen(num) - bitLen(den)

	quo := make([]W, shift/wb+1)
	rem := num

	for ; shift > 0; shift-- {
		by := shlWords(den, shift)
		if cmpWords(rem, by) >= 0 {
			rem, _ = subWords(rem, by)
			rem = trimWords(rem)
			quo[len(quo)-1-int(shift/wb)] |= W(1) << (shift % wb)
		}
	}
	if cmpWords(rem, den) >= 0 {
		rem, _ = subWords(rem, den)
		quo[len(quo)-1] |= 1
	}

	q, _ = u.with(quo)
	r, _ = u.with(rem)
	return q, r
}
