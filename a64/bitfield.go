package a64

// bitfieldWidth and bitfieldRotate share the immr/imms interpretation
// all three bitfield-move forms use: when imms >= immr the selected
// field is the contiguous run [immr, imms] rotated down to bit 0 (the
// common BFXIL/UBFX/SBFX/LSR/ASR shape); when imms < immr the field
// wraps, the shape LSL/BFI decode into.
func bitfieldWidth(immr, imms, regSize uint8) uint8 {
	if imms >= immr {
		return imms - immr + 1
	}
	return imms + 1 + (regSize - immr)
}

// ExecuteBFM copies the bits DecodeBitmaskImmediate-style immr/imms
// selects from src into dst at bit 0 upward, leaving dst's remaining
// bits unchanged (the "insert" semantics BFI/BFXIL share once decoded
// to immr/imms form).
func ExecuteBFM(dst, src uint64, immr, imms uint8, is64 bool) uint64 {
	regSize := uint8(32)
	if is64 {
		regSize = 64
	}
	width := bitfieldWidth(immr, imms, regSize)
	rotated := rotr64(src, immr, regSize)
	fieldMask := onesMask64(width)
	result := (dst &^ fieldMask) | (rotated & fieldMask)
	return maskWidth(result, regSize)
}

// ExecuteSBFM implements the sign-extending bitfield-move used by
// SBFX/ASR/SXTB/SXTH/SXTW once decoded to immr/imms form: like
// ExecuteBFM but the bits above the moved field are sign-extended from
// its top bit rather than preserving dst's prior contents.
func ExecuteSBFM(src uint64, immr, imms uint8, is64 bool) uint64 {
	regSize := uint8(32)
	if is64 {
		regSize = 64
	}
	width := bitfieldWidth(immr, imms, regSize)
	rotated := rotr64(src, immr, regSize)
	field := rotated & onesMask64(width)
	signBit := uint64(1) << (width - 1)
	if field&signBit != 0 {
		field |= onesMask64(regSize) &^ onesMask64(width)
	}
	return maskWidth(field, regSize)
}

// ExecuteUBFM implements the zero-extending form used by UBFX/LSR/LSL/
// UXTB/UXTH once decoded to immr/imms form.
func ExecuteUBFM(src uint64, immr, imms uint8, is64 bool) uint64 {
	regSize := uint8(32)
	if is64 {
		regSize = 64
	}
	width := bitfieldWidth(immr, imms, regSize)
	rotated := rotr64(src, immr, regSize)
	return maskWidth(rotated&onesMask64(width), regSize)
}

func rotr64(v uint64, amount, width uint8) uint64 {
	v = maskWidth(v, width)
	if amount == 0 {
		return v
	}
	amount %= width
	return maskWidth((v>>amount)|(v<<(width-amount)), width)
}

func onesMask64(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func maskWidth(v uint64, width uint8) uint64 {
	return v & onesMask64(width)
}
