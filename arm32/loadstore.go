package arm32

import "github.com/BinaryMelodies/all-the-arm/armmem"

// LoadStoreWidth selects the transfer size/signedness for the LDR/STR
// family.
type LoadStoreWidth uint8

const (
	WidthWord LoadStoreWidth = iota
	WidthByte
	WidthHalf
	WidthSignedByte
	WidthSignedHalf
	WidthDouble
)

// AddressingMode computes the effective address and writeback value
// for LDR/STR-family pre/post-indexed addressing.
type AddressingMode struct {
	Base       uint32
	Offset     uint32
	Up         bool // add offset, vs subtract
	PreIndex   bool
	Writeback  bool
}

// Resolve returns the address to access and, if Writeback is set, the
// new base-register value.
func (a AddressingMode) Resolve() (effective uint32, newBase uint32, writeback bool) {
	var offset uint32
	if a.Up {
		offset = a.Base + a.Offset
	} else {
		offset = a.Base - a.Offset
	}
	if a.PreIndex {
		return offset, offset, a.Writeback
	}
	return a.Base, offset, a.Writeback
}

// ExecuteLoad performs LDR/LDRB/LDRH/LDRSB/LDRSH semantics:
// reading width bytes from addr (honoring unprivileged, for the
// T-variant) and widening per width's signedness. WidthDouble reads a
// single word here; LDRD goes through ExecuteLoadDoubleword.
func ExecuteLoad(c *Core, width LoadStoreWidth, addr uint32, unprivileged bool) (uint32, error) {
	priv := c.privileged() && !unprivileged
	switch width {
	case WidthByte:
		v, err := c.Bus.ReadU8(uint64(addr), c.Endian, priv)
		return uint32(v), err
	case WidthSignedByte:
		v, err := c.Bus.ReadU8(uint64(addr), c.Endian, priv)
		return uint32(int32(int8(v))), err
	case WidthHalf:
		v, err := c.Bus.ReadU16(uint64(addr), c.Endian, priv, c.AlignMode)
		return uint32(v), err
	case WidthSignedHalf:
		v, err := c.Bus.ReadU16(uint64(addr), c.Endian, priv, c.AlignMode)
		return uint32(int32(int16(v))), err
	default: // WidthWord
		return c.Bus.ReadU32(uint64(addr), c.Endian, priv, c.AlignMode)
	}
}

// ExecuteStore performs STR/STRB/STRH semantics.
func ExecuteStore(c *Core, width LoadStoreWidth, addr uint32, value uint32, unprivileged bool) error {
	priv := c.privileged() && !unprivileged
	switch width {
	case WidthByte, WidthSignedByte:
		return c.Bus.WriteU8(uint64(addr), uint8(value), c.Endian, priv)
	case WidthHalf, WidthSignedHalf:
		return c.Bus.WriteU16(uint64(addr), uint16(value), c.Endian, priv, c.AlignMode)
	default:
		return c.Bus.WriteU32(uint64(addr), value, c.Endian, priv, c.AlignMode)
	}
}

// ExecuteLoadDoubleword performs LDRD: two consecutive word reads,
// requiring 8-byte alignment on v7+ but tolerating 4-byte alignment on
// older cores.
func ExecuteLoadDoubleword(c *Core, addr uint32, strictAlign bool) (lo, hi uint32, err error) {
	mode := c.AlignMode
	if strictAlign {
		if addr%8 != 0 {
			return 0, 0, armmem.ErrUnaligned
		}
		mode = armmem.AlignStrict
	}
	lo32, err := c.Bus.ReadU32(uint64(addr), c.Endian, c.privileged(), mode)
	if err != nil {
		return 0, 0, err
	}
	hi32, err := c.Bus.ReadU32(uint64(addr)+4, c.Endian, c.privileged(), mode)
	return lo32, hi32, err
}

// ExecuteStoreDoubleword performs STRD, with the same alignment rule as
// ExecuteLoadDoubleword.
func ExecuteStoreDoubleword(c *Core, addr uint32, lo, hi uint32, strictAlign bool) error {
	mode := c.AlignMode
	if strictAlign {
		if addr%8 != 0 {
			return armmem.ErrUnaligned
		}
		mode = armmem.AlignStrict
	}
	if err := c.Bus.WriteU32(uint64(addr), lo, c.Endian, c.privileged(), mode); err != nil {
		return err
	}
	return c.Bus.WriteU32(uint64(addr)+4, hi, c.Endian, c.privileged(), mode)
}
