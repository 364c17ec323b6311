package uintx

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Hash returns a digest of the numeric value of u. Values that are Equal hash
// the same, whatever their word width or however they were constructed.
func (u UintX[W]) Hash() uint64 {
	sum := blake3.Sum256(u.magnitudeBytes())
	return binary.BigEndian.Uint64(sum[:8])
}

// magnitudeBytes is the minimal big-endian byte form of u; 0 is a single zero
// byte.
func (u UintX[W]) magnitudeBytes() []byte {
	return trimWords(regroup[uint8](Descending, u.words()))
}
