package uintx

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c UintX8
	}{
		{u8(1), u8(2), u8(3)},
		{u8(10), u8(3), u8(13)},
		{u8(0xFF), u8(1), u8(0x100)}, // carries into a new word
		{u8(maxUint64), u8(1), u8s("18446744073709551616")},
		{u8(maxUint64), u8(maxUint64), u8s("0x1FFFFFFFFFFFFFFFE")},
		{u8s("0x1234 5678 9abc def0"), u8(0), u8s("0x1234 5678 9abc def0")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, overflow := tc.a.AddOverflow(tc.b)
			tt.MustAssert(!overflow)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(tc.c.Equal(tc.b.Add(tc.a)))
		})
	}
}

func TestAddOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	a := From[uint8](uint16(0xFFFF), MaxWords(2))
	r, overflow := a.AddOverflow(u8(1))
	tt.MustAssert(overflow)
	tt.MustAssert(r.IsZero())

	r, overflow = a.AddOverflow(u8(0x102))
	tt.MustAssert(overflow)
	tt.MustAssert(u8(0x101).Equal(r), "found %s", r)

	// The receiver's capacity wins:
	r, overflow = u8(1).AddOverflow(a)
	tt.MustAssert(!overflow)
	tt.MustAssert(u8(0x10000).Equal(r), "found %s", r)
}

func TestInc(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u8(1).Equal(u8(0).Inc()))
	tt.MustAssert(u8(0x100).Equal(u8(0xFF).Inc()))
	tt.MustAssert(u16s("0x1 0000 0000").Equal(u16s("0xFFFF FFFF").Inc()))
	tt.MustAssert(Max[uint8](MaxWords(3)).Inc().IsZero())
}

func TestDec(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u8(0).Equal(u8(1).Dec()))
	tt.MustAssert(u8(0xFF).Equal(u8(0x100).Dec()))
	tt.MustAssert(u8(0xFF).Equal(u8(0).Dec())) // wraps within a single word
	tt.MustAssert(u32s("0xFFFFFFFF").Equal(u32s("0").Dec()))
}

func TestSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  UintX8
		overflow bool
	}{
		{u8(3), u8(2), u8(1), false},
		{u8(0x100), u8(1), u8(0xFF), false},
		{u8(0x100), u8(0x100), u8(0), false},
		{u8s("0x1234 5678 9abc def0"), u8s("0x1234 5678 9abc def0"), u8(0), false},
		{u8s("0x1 0000 0000 0000 0000"), u8(1), u8s("0xFFFF FFFF FFFF FFFF"), false},

		// Wraps at the width of the wider operand:
		{u8(23), u8(45), u8(0xEA), true},
		{u8(23), u8(267), u8(0xFF0C), true},
		{u8(0), u8(1), u8(0xFF), true},
		{u8(0), u8(0x100), u8(0xFF00), true},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, overflow := tc.a.SubOverflow(tc.b)
			tt.MustEqual(tc.overflow, overflow)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
		})
	}
}

func TestMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c UintX8
	}{
		{u8(1), u8(0), u8(0)},
		{u8(0), u8(1), u8(0)},
		{u8(1), u8(1), u8(1)},
		{u8(12), u8(12), u8(144)},
		{u8(0xFF), u8(0xFF), u8(0xFE01)},
		{u8(0xFFFF), u8(0xFFFF), u8s("0xfffe0001")},
		{u8(0xFFFFFF), u8(0xFFFFFF), u8s("0xfffffe000001")},
		{u8(0xFFFFFFFF), u8(0xFFFFFFFF), u8s("0xfffffffe00000001")},
		{u8(maxUint64), u8(maxUint64), u8s("0xFFFFFFFFFFFFFFFE 0000000000000001")},
		{u8(0x100), u8(0x100), u8(0x10000)},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, overflow := tc.a.MulOverflow(tc.b)
			tt.MustAssert(!overflow)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(tc.c.Equal(tc.b.Mul(tc.a)))
		})
	}
}

func TestMulOverflow(t *testing.T) {
	for idx, tc := range []struct {
		a, b     UintX8
		c        UintX8
		overflow bool
	}{
		{From[uint8](uint16(0x100), MaxWords(2)), u8(0x100), u8(0), true},
		{From[uint8](uint16(0xFF), MaxWords(2)), u8(0x101), u8(0xFFFF), false},
		{From[uint8](uint16(0xFFFF), MaxWords(2)), u8(0xFFFF), u8(1), true},
		{From[uint8](uint16(0x8000), MaxWords(2)), u8(2), u8(0), true},
		{From[uint8](uint16(0x4000), MaxWords(2)), u8(2), u8(0x8000), false},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, overflow := tc.a.MulOverflow(tc.b)
			tt.MustEqual(tc.overflow, overflow)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustEqual(2, r.MaxWords())
		})
	}
}

func TestQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r UintX64
	}{
		{u64s("4471200"), u64s("3"), u64s("1490400"), u64s("0")},
		{u64s("4471200"), u64s("43"), u64s("103981"), u64s("17")},
		{u64s("4471200"), u64s("7931"), u64s("563"), u64s("6047")},
		{u64s("4471200"), u64s("9999999"), u64s("0"), u64s("4471200")},
		{u64s("4471200"), u64s("1"), u64s("4471200"), u64s("0")},
		{u64s("4471200"), u64s("4471200"), u64s("1"), u64s("0")},
		{u64s("18446744073709551614"), u64s("9223372036854775807"), u64s("2"), u64s("0")},
		{u64s("0x7bff"), u64s("0xff"), u64s("0x7c"), u64s("123")},
		{FromWords[uint64](Ascending, []uint64{maxUint64, 123}), u64s("18446744073709551615"), u64s("124"), u64s("123")},
		{u64s("0x1 0000000000000000 0000000000000000"), u64s("0x1 0000000000000000"), u64s("0x1 0000000000000000"), u64s("0")},

		// Division by zero yields zero:
		{u64s("4471200"), u64s("0"), u64s("0"), u64s("0")},
		{u64s("0"), u64s("0"), u64s("0"), u64s("0")},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustAssert(tc.q.Equal(q), "quo: expected %s, found %s", tc.q, q)
			tt.MustAssert(tc.r.Equal(r), "rem: expected %s, found %s", tc.r, r)

			tt.MustAssert(tc.q.Equal(tc.u.Quo(tc.by)))
			tt.MustAssert(tc.r.Equal(tc.u.Rem(tc.by)))

			q, overflow := tc.u.QuoOverflow(tc.by)
			tt.MustAssert(!overflow)
			tt.MustAssert(tc.q.Equal(q))

			r, overflow = tc.u.RemOverflow(tc.by)
			tt.MustAssert(!overflow)
			tt.MustAssert(tc.r.Equal(r))

			if !tc.by.IsZero() {
				tt.MustAssert(tc.u.Equal(q.Mul(tc.by).Add(r)))
			}
		})
	}
}

func TestQuoRemWidths(t *testing.T) {
	tt := assert.WrapTB(t)

	// The same division with every word width:
	num, den := "0x1234 5678 9abc def0 1234 5678", "0xfedc ba98"
	q, r := u8s(num).QuoRem(u8s(den))
	for _, v := range []struct{ q, r string }{
		{Convert[uint8](u16s(num).Quo(u16s(den))).String(), Convert[uint8](u16s(num).Rem(u16s(den))).String()},
		{Convert[uint8](u32s(num).Quo(u32s(den))).String(), Convert[uint8](u32s(num).Rem(u32s(den))).String()},
		{Convert[uint8](u64s(num).Quo(u64s(den))).String(), Convert[uint8](u64s(num).Rem(u64s(den))).String()},
	} {
		tt.MustEqual(q.String(), v.q)
		tt.MustEqual(r.String(), v.r)
	}
}
