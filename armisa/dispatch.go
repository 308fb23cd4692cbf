// Package armisa selects the per-step decoder and performs the
// ISA-specific instruction fetch.
package armisa

import (
	"fmt"

	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
)

// Select implements the dispatcher table keyed by (PSTATE.rw,
// PSTATE.jt).
func Select(p armstate.PSTATE) armstate.ISA {
	return p.ISA()
}

// Fetched is the result of fetching one instruction: its raw encoding
// (widened to 32 bits for uniform handling), its natural width in
// bytes, and the PC the fetch was made from.
type Fetched struct {
	Raw    uint32
	Width  int
	OldPC  uint64
}

// Fetch performs the per-ISA fetch sequence: ARM/ARM26 read a word and
// mask the low 2 bits; A64 requires 4-alignment; Thumb reads a
// halfword and conditionally a second one for 32-bit Thumb-2
// encodings; Jazelle reads a single byte.
func Fetch(f *armstate.File, bus *armmem.Bus, endian armmem.Endian, version armstate.Version) (Fetched, error) {
	old := f.PC
	isa := f.ISA()
	priv := f.Mode != armstate.ModeUSR && f.EL == 0 // AArch64 fetches above EL0 are made unprivileged
	switch isa {
	case armstate.Arm64:
		if f.PC%4 != 0 {
			return Fetched{}, fmt.Errorf("unaligned pc fetch at 0x%x", f.PC)
		}
		w, err := bus.ReadU32(f.PC, endian, priv, armmem.AlignNative)
		if err != nil {
			return Fetched{}, err
		}
		f.PC += 4
		return Fetched{Raw: w, Width: 4, OldPC: old}, nil
	case armstate.Arm26, armstate.Arm32:
		addr := f.PC &^ 3
		w, err := bus.ReadU32(addr, endian, priv, armmem.AlignNative)
		if err != nil {
			return Fetched{}, err
		}
		f.PC += 4
		if isa == armstate.Arm26 {
			f.PC &= 0x03ffffff
		}
		return Fetched{Raw: w, Width: 4, OldPC: old}, nil
	case armstate.Thumb, armstate.ThumbEE:
		addr := f.PC &^ 1
		h, err := bus.ReadU16(addr, endian, priv, armmem.AlignNative)
		if err != nil {
			return Fetched{}, err
		}
		f.PC += 2
		if isThumb2Prefix(h) && version >= armstate.V6T2 {
			h2, err := bus.ReadU16(f.PC, endian, priv, armmem.AlignNative)
			if err != nil {
				return Fetched{}, err
			}
			f.PC += 2
			return Fetched{Raw: uint32(h)<<16 | uint32(h2), Width: 4, OldPC: old}, nil
		}
		return Fetched{Raw: uint32(h), Width: 2, OldPC: old}, nil
	case armstate.Jazelle:
		b, err := bus.ReadU8(f.PC, endian, priv)
		if err != nil {
			return Fetched{}, err
		}
		f.PC++
		return Fetched{Raw: uint32(b), Width: 1, OldPC: old}, nil
	}
	return Fetched{}, fmt.Errorf("no decoder for ISA %s", isa)
}

// isThumb2Prefix reports whether h's top 5 bits mark it as the first
// halfword of a 32-bit Thumb-2 encoding.
func isThumb2Prefix(h uint16) bool {
	top5 := h >> 11
	return top5 == 0b11101 || top5 == 0b11110 || top5 == 0b11111
}
