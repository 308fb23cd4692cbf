package jazelle

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/except"
)

// ArrayLayout configures how an array object's length and first
// element live relative to its reference, mirroring the JAOLR/JOSCR
// system registers: LengthOffset/LengthSub locate the length word,
// ElementOffset locates the first element, and FlatArray selects
// whether that element offset is a direct address (flat) or itself a
// pointer to read before indexing (indirected).
type ArrayLayout struct {
	LengthOffset  uint32
	LengthSub     bool
	ElementOffset uint32
	FlatArray     bool
}

// ArrayLength reads an array's length word, raising JazelleNullPtr for
// a zero reference before touching memory.
func ArrayLength(c *arm32.Core, layout ArrayLayout, array uint32) (uint32, error) {
	if array == 0 {
		return 0, except.Raise(except.JazelleNullPtr)
	}
	var lengthAddr uint32
	if layout.LengthSub {
		lengthAddr = array - layout.LengthOffset
	} else {
		lengthAddr = array + layout.LengthOffset
	}
	return arm32.ExecuteLoad(c, arm32.WidthWord, lengthAddr, false)
}

// elementStartAddress resolves the first element's address, following
// one level of indirection when the layout is not flat.
func elementStartAddress(c *arm32.Core, layout ArrayLayout, array uint32) (uint32, error) {
	addr := array + layout.ElementOffset
	if layout.FlatArray {
		return addr, nil
	}
	return arm32.ExecuteLoad(c, arm32.WidthWord, addr, false)
}

// ArrayElementAddress resolves the address of element index, scaled by
// elementSize, raising JazelleOutOfBounds when index is not strictly
// less than the array's length.
func ArrayElementAddress(c *arm32.Core, layout ArrayLayout, array, index, elementSize uint32) (uint32, error) {
	length, err := ArrayLength(c, layout, array)
	if err != nil {
		return 0, err
	}
	if index >= length {
		return 0, except.Raise(except.JazelleOutOfBounds)
	}
	start, err := elementStartAddress(c, layout, array)
	if err != nil {
		return 0, err
	}
	return start + index*elementSize, nil
}

// GetArrayWord/SetArrayWord read and write a 4-byte array element,
// bounds-checked against the array's length word.
func GetArrayWord(c *arm32.Core, layout ArrayLayout, array, index uint32) (uint32, error) {
	addr, err := ArrayElementAddress(c, layout, array, index, 4)
	if err != nil {
		return 0, err
	}
	return arm32.ExecuteLoad(c, arm32.WidthWord, addr, false)
}

func SetArrayWord(c *arm32.Core, layout ArrayLayout, array, index, value uint32) error {
	addr, err := ArrayElementAddress(c, layout, array, index, 4)
	if err != nil {
		return err
	}
	return arm32.ExecuteStore(c, arm32.WidthWord, addr, value, false)
}

// GetArrayByte/SetArrayByte are the byte-array counterparts.
func GetArrayByte(c *arm32.Core, layout ArrayLayout, array, index uint32) (uint32, error) {
	addr, err := ArrayElementAddress(c, layout, array, index, 1)
	if err != nil {
		return 0, err
	}
	return arm32.ExecuteLoad(c, arm32.WidthByte, addr, false)
}

func SetArrayByte(c *arm32.Core, layout ArrayLayout, array, index, value uint32) error {
	addr, err := ArrayElementAddress(c, layout, array, index, 1)
	if err != nil {
		return err
	}
	return arm32.ExecuteStore(c, arm32.WidthByte, addr, value, false)
}
