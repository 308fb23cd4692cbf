package armmem

import "fmt"

// AlignMode selects how the bus reacts to a misaligned multi-byte
// access. The caller (armstate, given SCTLR.A/U and the configured
// architecture version) picks which mode applies; the bus itself
// holds no version knowledge.
type AlignMode uint8

const (
	// AlignStrict raises ErrUnaligned on any misaligned access.
	AlignStrict AlignMode = iota
	// AlignRotatedLoad is the ARMv4/v5 LDR/STR behavior: round the
	// address down to a 4-byte boundary and, for loads, rotate the
	// result right by (addr mod 4)*8 bits.
	AlignRotatedLoad
	// AlignNative permits unaligned word/halfword accesses natively
	// (ARMv7+).
	AlignNative
)

// ErrUnaligned is returned when AlignStrict rejects a misaligned access.
var ErrUnaligned = fmt.Errorf("unaligned access with AlignStrict")

// ErrFault is returned when the backend rejects an access. Callers
// that need to distinguish prefetch vs data aborts do so based on
// which Bus method returned the error.
var ErrFault = fmt.Errorf("backend rejected memory access")

// ChangeRange is the advisory "(lowest, highest) changed" pair
// consumed by an external debugger.
type ChangeRange struct {
	Lowest, Highest uint64
	Dirty           bool
}

// Bus wraps a Backend and reduces the three historical endianness
// policies to a sequence of byte accesses. It knows no ARM semantics
// beyond endianness and alignment, leaving everything else to an
// arbitrary pluggable Backend.
type Bus struct {
	backend Backend
	changed ChangeRange
}

// NewBus wraps backend in a Bus with an empty change range.
func NewBus(backend Backend) *Bus {
	return &Bus{backend: backend}
}

// LoadBytes writes data starting at base as a privileged access,
// bypassing endianness and alignment policy, for a host setting up
// memory contents before the first Step (e.g. loading an image).
func (b *Bus) LoadBytes(base uint64, data []byte) error {
	for i, v := range data {
		if !b.backend.WriteBytes(base+uint64(i), []byte{v}, true) {
			return ErrFault
		}
	}
	return nil
}

// ChangedRange returns the advisory changed-bytes range.
func (b *Bus) ChangedRange() (lowest, highest uint64, dirty bool) {
	return b.changed.Lowest, b.changed.Highest, b.changed.Dirty
}

// ResetChangedRange clears the advisory range, normally called by the
// host debugger after consuming it.
func (b *Bus) ResetChangedRange() {
	b.changed = ChangeRange{}
}

func (b *Bus) markChanged(addr uint64, size int) {
	hi := addr + uint64(size) - 1
	if !b.changed.Dirty {
		b.changed.Lowest, b.changed.Highest, b.changed.Dirty = addr, hi, true
		return
	}
	if addr < b.changed.Lowest {
		b.changed.Lowest = addr
	}
	if hi > b.changed.Highest {
		b.changed.Highest = hi
	}
}

// be32PhysicalAddress implements the BE-32 byte-lane algorithm: within
// each 4-byte lane, architectural address A is physically stored at
// A^3.
func be32PhysicalAddress(a uint64) uint64 {
	lane := a &^ 3
	return lane + (3 - (a & 3))
}

// physicalAddresses returns, for a span [addr, addr+size), the physical
// address each logical byte offset maps to under the given endian
// policy. Under Little and Big8 this is the identity; under Big32 each
// byte is remapped by be32PhysicalAddress.
func physicalAddresses(addr uint64, size int, e Endian) []uint64 {
	out := make([]uint64, size)
	for i := 0; i < size; i++ {
		a := addr + uint64(i)
		if e == Big32 {
			a = be32PhysicalAddress(a)
		}
		out[i] = a
	}
	return out
}

func (b *Bus) readPhysical(addrs []uint64, priv bool) ([]byte, bool) {
	buf := make([]byte, len(addrs))
	for i, a := range addrs {
		one := make([]byte, 1)
		if !b.backend.ReadBytes(a, one, priv) {
			return nil, false
		}
		buf[i] = one[0]
	}
	return buf, true
}

func (b *Bus) writePhysical(addrs []uint64, data []byte, priv bool) bool {
	for i, a := range addrs {
		one := [1]byte{data[i]}
		if !b.backend.WriteBytes(a, one[:], priv) {
			return false
		}
	}
	return true
}

// assemble interprets a byte slice, ordered by architectural offset, as
// an unsigned integer per the endian policy's multi-byte assembly rule.
// Big8 and Big32 both number bytes big-endian (offset 0 is the most
// significant byte); Big32's word-invariance with Little comes
// entirely from physicalAddresses' XOR-3 lane remap, not from a
// different byte order here.
func assemble(buf []byte, e Endian) uint64 {
	var v uint64
	if e != Little {
		for _, x := range buf {
			v = (v << 8) | uint64(x)
		}
		return v
	}
	for i := len(buf) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(buf[i])
	}
	return v
}

func disassemble(v uint64, size int, e Endian) []byte {
	buf := make([]byte, size)
	if e != Little {
		for i := size - 1; i >= 0; i-- {
			buf[i] = byte(v)
			v >>= 8
		}
		return buf
	}
	for i := 0; i < size; i++ {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}

func (b *Bus) readSized(addr uint64, size int, e Endian, priv bool) (uint64, error) {
	addrs := physicalAddresses(addr, size, e)
	buf, ok := b.readPhysical(addrs, priv)
	if !ok {
		return 0, ErrFault
	}
	return assemble(buf, e), nil
}

func (b *Bus) writeSized(addr uint64, v uint64, size int, e Endian, priv bool) error {
	addrs := physicalAddresses(addr, size, e)
	buf := disassemble(v, size, e)
	if !b.writePhysical(addrs, buf, priv) {
		return ErrFault
	}
	b.markChanged(addr, size)
	return nil
}

// ReadU8 reads a single byte. Under Big32 the byte's address is
// remapped by be32PhysicalAddress; Little and Big8 read it in place.
func (b *Bus) ReadU8(addr uint64, e Endian, priv bool) (uint8, error) {
	v, err := b.readSized(addr, 1, e, priv)
	return uint8(v), err
}

// WriteU8 writes a single byte.
func (b *Bus) WriteU8(addr uint64, v uint8, e Endian, priv bool) error {
	return b.writeSized(addr, uint64(v), 1, e, priv)
}

func checkAlign(addr uint64, size int, mode AlignMode) (aligned bool, rotateBits uint, err error) {
	rem := addr % uint64(size)
	if rem == 0 {
		return true, 0, nil
	}
	switch mode {
	case AlignStrict:
		return false, 0, ErrUnaligned
	case AlignRotatedLoad:
		return false, uint(rem) * 8, nil
	default: // AlignNative
		return false, 0, nil
	}
}

// ReadU16 reads a 16-bit value, applying mode's alignment policy.
func (b *Bus) ReadU16(addr uint64, e Endian, priv bool, mode AlignMode) (uint16, error) {
	aligned, _, err := checkAlign(addr, 2, mode)
	if err != nil {
		return 0, err
	}
	if !aligned && mode == AlignRotatedLoad {
		addr &^= 1
	}
	v, err := b.readSized(addr, 2, e, priv)
	return uint16(v), err
}

// WriteU16 writes a 16-bit value.
func (b *Bus) WriteU16(addr uint64, v uint16, e Endian, priv bool, mode AlignMode) error {
	aligned, _, err := checkAlign(addr, 2, mode)
	if err != nil {
		return err
	}
	if !aligned && mode == AlignRotatedLoad {
		addr &^= 1
	}
	return b.writeSized(addr, uint64(v), 2, e, priv)
}

// ReadU32 reads a 32-bit value, applying the ARMv4/v5 rotated-load
// behavior when mode is AlignRotatedLoad and the address is misaligned.
func (b *Bus) ReadU32(addr uint64, e Endian, priv bool, mode AlignMode) (uint32, error) {
	aligned, rot, err := checkAlign(addr, 4, mode)
	if err != nil {
		return 0, err
	}
	base := addr
	if !aligned && mode == AlignRotatedLoad {
		base = addr &^ 3
	}
	v, err := b.readSized(base, 4, e, priv)
	if err != nil {
		return 0, err
	}
	w := uint32(v)
	if rot != 0 {
		w = (w >> rot) | (w << (32 - rot))
	}
	return w, nil
}

// WriteU32 writes a 32-bit value.
func (b *Bus) WriteU32(addr uint64, v uint32, e Endian, priv bool, mode AlignMode) error {
	aligned, _, err := checkAlign(addr, 4, mode)
	if err != nil {
		return err
	}
	if !aligned && mode == AlignRotatedLoad {
		addr &^= 3
	}
	return b.writeSized(addr, uint64(v), 4, e, priv)
}

// ReadU64 reads a 64-bit value (A64 loads, LDRD/STRD pairs assembled by
// the caller).
func (b *Bus) ReadU64(addr uint64, e Endian, priv bool, mode AlignMode) (uint64, error) {
	aligned, _, err := checkAlign(addr, 8, mode)
	if err != nil {
		return 0, err
	}
	if !aligned && mode == AlignRotatedLoad {
		addr &^= 7
	}
	return b.readSized(addr, 8, e, priv)
}

// WriteU64 writes a 64-bit value.
func (b *Bus) WriteU64(addr uint64, v uint64, e Endian, priv bool, mode AlignMode) error {
	aligned, _, err := checkAlign(addr, 8, mode)
	if err != nil {
		return err
	}
	if !aligned && mode == AlignRotatedLoad {
		addr &^= 7
	}
	return b.writeSized(addr, v, 8, e, priv)
}
