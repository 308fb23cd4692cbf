package thumb

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/except"
)

// CheckNullPointer raises ThumbEENullPtr if base is zero, the implicit
// guard ThumbEE's HB09-HB17 handler-block opcodes and every normal
// load/store perform before computing an address.
func CheckNullPointer(base uint32) error {
	if base == 0 {
		return except.Raise(except.ThumbEENullPtr)
	}
	return nil
}

// CheckArrayBounds implements CHKA: index must be strictly less than
// the length word stored at the start of the array object; out-of-range
// raises ThumbEEOutOfBounds.
func CheckArrayBounds(index, length uint32) error {
	if index >= length {
		return except.Raise(except.ThumbEEOutOfBounds)
	}
	return nil
}

// ExecuteHandlerLoad implements the HBxx family: null-check then load
// a handler-table entry relative to a fixed base register (R8/R9 by
// convention), returning the loaded handler address.
func ExecuteHandlerLoad(c *Core, base uint32, offset uint32) (uint32, error) {
	if err := CheckNullPointer(base); err != nil {
		return 0, err
	}
	return arm32.ExecuteLoad(c, arm32.WidthWord, base+offset, false)
}
