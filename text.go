package uintx

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FromString creates a UintX from a string. Decimal strings are accepted, as
// are "0x", "0o" and "0b" prefixed strings (the forms produced by String).
// Underscores may separate digits. Overflow truncates to the configured
// capacity and sets accurate to 'false'.
func FromString[W Word](s string, opts ...Option) (out UintX[W], accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, false, fmt.Errorf("uintx: string %q invalid", s)
	}
	if b.Sign() < 0 {
		return out, false, fmt.Errorf("uintx: string %q is negative", s)
	}
	out, accurate = FromBigInt[W](b, opts...)
	return out, accurate, nil
}

// FromBigInt creates a UintX from a big.Int. Overflow truncates to the
// configured capacity and sets accurate to 'false'. Negative values return 0
// and 'false'.
func FromBigInt[W Word](v *big.Int, opts ...Option) (out UintX[W], accurate bool) {
	c := newConfig(opts)
	if v.Sign() < 0 {
		return UintX[W]{parts: []W{0}, max: c.maxWords}, false
	}

	bits := v.Bits()
	words := make([]uint, len(bits))
	for i, w := range bits {
		words[i] = uint(w)
	}
	out, truncated := fromWords[W](Ascending, words, c)
	return out, !truncated
}

func (u UintX[W]) IntoBigInt(b *big.Int) {
	var bits []big.Word

	switch intSize {
	case 64:
		words := regroup[uint64](Descending, u.words())
		bits = make([]big.Word, len(words))
		for i, w := range words {
			bits[len(words)-1-i] = big.Word(w)
		}

	case 32:
		words := regroup[uint32](Descending, u.words())
		bits = make([]big.Word, len(words))
		for i, w := range words {
			bits[len(words)-1-i] = big.Word(w)
		}

	default:
		panic("uintx: unsupported bit size")
	}

	b.SetBits(bits)
}

func (u UintX[W]) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// String renders u in decimal if it fits in a machine word. Anything wider is
// rendered in hex, each word zero-padded to its full width, so the output
// shows the word layout:
//
//	UintX16 0x1_0001_0001_0001_0001 => "0x00010001000100010001"
//
func (u UintX[W]) String() string {
	if u.BitWidth() <= intSize {
		return strconv.FormatUint(u.AsUint64(), 10)
	}

	wb := wordBits[W]()
	var sb strings.Builder

	if wb%4 != 0 {
		sb.WriteString("0b")
		for _, w := range u.words() {
			sb.WriteString(strconv.FormatUint(uint64(w), 2))
		}
		return sb.String()
	}

	digits := int(wb / 4)
	sb.WriteString("0x")
	for _, w := range u.words() {
		s := strconv.FormatUint(uint64(w), 16)
		sb.WriteString(strings.Repeat("0", digits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// Format implements fmt.Formatter. '%v' and '%s' use String; every other verb
// formats the numeric value the way big.Int does.
func (u UintX[W]) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u UintX[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses any string accepted by FromString. If u already has a
// capacity, it is kept.
func (u *UintX[W]) UnmarshalText(bts []byte) (err error) {
	v, _, err := FromString[W](string(bts), MaxWords(u.maxWords()))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UintX[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UintX[W]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("uintx: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
