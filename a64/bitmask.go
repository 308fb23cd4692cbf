package a64

import "github.com/holiman/uint256"

// DecodeBitmaskImmediate expands the N:immr:imms encoding used by
// AND/ORR/EOR/ANDS (immediate) and the BFM/SBFM/UBFM family into the
// 32- or 64-bit pattern it represents: a run of ones sized and rotated
// within an element of 2^len bits (len is the position of the highest
// set bit of N:NOT(imms)), then tiled to fill the register. Reports
// ok=false for the rejected encodings: no element size found, an
// all-ones element (which the architecture forbids since it collapses
// to a no-op mask), or, when N=0, a masked imms value s for which
// (s+1)&s is nonzero.
func DecodeBitmaskImmediate(n uint8, immr, imms uint8, is64 bool) (uint64, bool) {
	length := highestSetBit7(n, imms)
	if length < 1 {
		return 0, false
	}
	esize := uint8(1) << uint(length)
	levels := esize - 1
	s := imms & levels
	r := immr & levels
	if s == levels {
		return 0, false
	}
	if n == 0 && (s+1)&s != 0 {
		return 0, false
	}
	ones := s + 1

	pattern := onesRun(ones, esize)
	pattern = rotateRight(pattern, r, esize)

	regSize := uint(32)
	if is64 {
		regSize = 64
	}
	return replicate(pattern, esize, regSize), true
}

// highestSetBit7 returns the index (0-6) of the highest set bit of the
// 7-bit value N:NOT(imms<5:0>), or -1 if none is set.
func highestSetBit7(n uint8, imms uint8) int {
	combined := (uint16(n&1) << 6) | uint16(^imms&0x3f)
	for b := 6; b >= 0; b-- {
		if combined&(1<<uint(b)) != 0 {
			return b
		}
	}
	return -1
}

// onesRun builds a `count`-bit run of 1s at the bottom of an `esize`-
// wide field using 256-bit arithmetic so esize=64 never overflows a
// native shift.
func onesRun(count, esize uint8) *uint256.Int {
	one := uint256.NewInt(1)
	shifted := new(uint256.Int).Lsh(one, uint(count))
	allOnes := new(uint256.Int).Sub(shifted, uint256.NewInt(1))
	return maskToSize(allOnes, esize)
}

func rotateRight(v *uint256.Int, rot, esize uint8) *uint256.Int {
	if rot == 0 {
		return maskToSize(v, esize)
	}
	low := new(uint256.Int).Rsh(v, uint(rot))
	highShift := new(uint256.Int).Lsh(v, uint(esize)-uint(rot))
	combined := new(uint256.Int).Or(low, highShift)
	return maskToSize(combined, esize)
}

func maskToSize(v *uint256.Int, esize uint8) *uint256.Int {
	one := uint256.NewInt(1)
	limit := new(uint256.Int).Lsh(one, uint(esize))
	mask := new(uint256.Int).Sub(limit, uint256.NewInt(1))
	return new(uint256.Int).And(v, mask)
}

// replicate tiles an esize-wide pattern up to regSize bits and returns
// the low regSize bits (regSize is always 32 or 64 here).
func replicate(pattern *uint256.Int, esize uint8, regSize uint) (out uint64) {
	elem := pattern.Uint64()
	for filled := uint(0); filled < regSize; filled += uint(esize) {
		out |= elem << filled
	}
	if regSize < 64 {
		out &= (uint64(1) << regSize) - 1
	}
	return out
}
