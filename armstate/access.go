package armstate

// A32Get reads an AArch32 register, including the PC-offset read rule:
// r15 reads as PC+8 in ARM/ARM26 (the internal PC already points one
// instruction ahead of the executing instruction, so the visible
// offset from here is +4) and PC+4 in Thumb/ThumbEE.
func (f *File) A32Get(n uint8, version Version) uint32 {
	if n == 15 {
		if f.JT == JTArm {
			return uint32(f.PC + 4)
		}
		return uint32(f.PC + 2)
	}
	return uint32(f.RawGet(SlotOf(n, f.Mode, version)))
}

// A32Set writes an AArch32 register, applying the PC-mask rule.
func (f *File) A32Set(n uint8, version Version, v uint32) {
	if n == 15 {
		if f.RW == 26 {
			f.PC = uint64(v & 0x03fffffc)
		} else if f.JT == JTThumb || f.JT == JTThumbEE {
			f.PC = uint64(v &^ 1)
		} else {
			f.PC = uint64(v &^ 3)
		}
		return
	}
	f.RawSet(SlotOf(n, f.Mode, version), uint64(v))
}

// A32SetInterworking writes r15 honoring the interworking low bit:
// version gates whether the low bit of v may switch ISA (>=v5 for
// LDR-family loads, >=v7 for ALU-result writes); minVersion carries
// whichever gate the caller's instruction class requires.
func (f *File) A32SetInterworking(n uint8, version, minVersion Version, v uint32, cfg Config) {
	if n != 15 || f.RW == 26 {
		f.A32Set(n, version, v)
		return
	}
	if version >= minVersion {
		if v&1 != 0 {
			f.SetISA(Thumb, cfg)
		} else {
			f.SetISA(Arm32, cfg)
		}
		f.PC = uint64(v &^ 1)
		return
	}
	// The gate failed: the ISA doesn't switch, so PC gets the same mask
	// A32Set would apply for whichever ISA is still current.
	if f.JT == JTThumb || f.JT == JTThumbEE {
		f.PC = uint64(v &^ 1)
	} else {
		f.PC = uint64(v &^ 3)
	}
}

// A64Get reads an AArch64 register. Register 31 is XZR if suppressSP,
// otherwise the active SP for the current EL/sp selector.
func (f *File) A64Get(n uint8, suppressSP bool) uint64 {
	if n == 31 {
		if suppressSP {
			return 0
		}
		return f.activeSP()
	}
	if n < 15 {
		return f.slots[n]
	}
	return f.xExtra[n-15]
}

// A64Set writes an AArch64 register.
func (f *File) A64Set(n uint8, suppressSP bool, v uint64) {
	if n == 31 {
		if suppressSP {
			return
		}
		f.setActiveSP(v)
		return
	}
	if n < 15 {
		f.slots[n] = v
		return
	}
	f.xExtra[n-15] = v
}

func (f *File) activeSP() uint64 {
	if f.SP == 0 {
		return f.slots[SPEL0]
	}
	switch f.EL {
	case 1:
		return f.slots[SPEL1]
	case 2:
		return f.slots[SPEL2]
	case 3:
		return f.slots[SPEL3]
	}
	return f.slots[SPEL0]
}

func (f *File) setActiveSP(v uint64) {
	if f.SP == 0 {
		f.slots[SPEL0] = v
		return
	}
	switch f.EL {
	case 1:
		f.slots[SPEL1] = v
	case 2:
		f.slots[SPEL2] = v
	case 3:
		f.slots[SPEL3] = v
	default:
		f.slots[SPEL0] = v
	}
}
