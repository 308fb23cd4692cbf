package armstate

// File is the flat register bank plus PSTATE: every banked mode's
// registers live in one backing array addressed through a lookup
// function, so banking stays O(1) and side-effect-free instead of a
// per-mode pointer graph.
type File struct {
	slots [numRegs]uint64
	// xExtra holds X15-X30, the AArch64 general registers with no
	// AArch32 R0-R14 counterpart to alias (X0-X14 alias slots[R0:R14]
	// per the architecture's AArch32/A64 register mapping).
	xExtra [16]uint64
	PC     uint64
	PSTATE
	Monitor ExclusiveMonitor
	Sys     SysRegs
}

// SysRegs holds the system control registers.
type SysRegs struct {
	SCTLREL1, SCTLREL2, SCTLREL3 uint64
	SCREL3                       uint64
	HCREL2                       uint64
	VBAREL1, VBAREL2, VBAREL3    uint64
}

// SCTLR bit accessors used across armmem alignment policy selection and
// exception entry.
const (
	sctlrA = 1 << 1 // alignment check
	sctlrB = 1 << 7 // BE-32 (big endian, legacy)
	sctlrU = 1 << 22
	sctlrV = 1 << 13 // high exception vectors
	sctlrTE = 1 << 30
	sctlrEE = 1 << 25
	sctlrSPAN = 1 << 23
)

// AlignmentCheckEnabled reports SCTLR.A for the given EL's controlling
// SCTLR (EL1 is used for EL0/EL1, per the architecture's usual model).
func (s SysRegs) AlignmentCheckEnabled(el uint8) bool {
	return s.sctlrFor(el)&sctlrA != 0
}

// UnalignedSupportEnabled reports SCTLR.U.
func (s SysRegs) UnalignedSupportEnabled(el uint8) bool {
	return s.sctlrFor(el)&sctlrU != 0
}

// SPANEnabled reports SCTLR.SPAN for the EL's controlling SCTLR.
func (s SysRegs) SPANEnabled(el uint8) bool {
	return s.sctlrFor(el)&sctlrSPAN != 0
}

// VBARFor returns VBAR_ELn for the given target EL (EL0 shares EL1's).
func (s SysRegs) VBARFor(el uint8) uint64 {
	switch el {
	case 2:
		return s.VBAREL2
	case 3:
		return s.VBAREL3
	default:
		return s.VBAREL1
	}
}

func (s SysRegs) sctlrFor(el uint8) uint64 {
	switch el {
	case 2:
		return s.SCTLREL2
	case 3:
		return s.SCTLREL3
	default:
		return s.SCTLREL1
	}
}

// ExclusiveMonitor models the exclusive-monitor data: start<=end means
// a reservation is held, start>end means cleared.
type ExclusiveMonitor struct {
	ProcID     uint32
	Start, End uint64
}

// Reserve opens a reservation covering [addr, addr+size).
func (m *ExclusiveMonitor) Reserve(addr uint64, size uint64) {
	m.Start, m.End = addr, addr+size-1
}

// IsOpen reports whether a reservation currently covers addr.
func (m *ExclusiveMonitor) IsOpen(addr uint64, size uint64) bool {
	if m.Start > m.End {
		return false
	}
	end := addr + size - 1
	return addr >= m.Start && end <= m.End
}

// Clear closes the reservation (CLREX, any successful/failed STREX, or
// any exception entry).
func (m *ExclusiveMonitor) Clear() {
	m.Start, m.End = 1, 0
}

// modeIndex maps an AArch32 mode byte to a 0..7 bank index used by the
// slotOf table (USR/SYS share the user bank).
func modeIndex(mode uint8) int {
	switch mode {
	case ModeFIQ:
		return 1
	case ModeIRQ:
		return 2
	case ModeSVC:
		return 3
	case ModeABT:
		return 4
	case ModeUND:
		return 5
	case ModeMON:
		return 6
	case ModeHYP:
		return 7
	default: // USR, SYS
		return 0
	}
}

// SlotOf is the pure mode/register-number -> logical slot function
// DESIGN NOTES asks for in place of the source's 16x16 lookup table
// (plus the ARMv1 variant, which keeps only the FIQ bank and resolves
// every other mode to the user bank).
func SlotOf(n uint8, mode uint8, version Version) Reg {
	if n == 15 {
		return PC
	}
	if n < 8 {
		return Reg(n)
	}
	bank := modeIndex(mode)
	if version == V1 && bank != 0 {
		// ARMv1 had only the FIQ bank; everything else reads/writes
		// the user-mode registers.
		if bank != 1 {
			bank = 0
		}
	}
	switch bank {
	case 0:
		return Reg(n)
	case 1: // FIQ: r8-r14 banked
		if n < 8 {
			return Reg(n)
		}
		return R8FIQ + Reg(n-8)
	case 2: // IRQ: r13-r14 banked
		if n == 13 {
			return R13IRQ
		}
		if n == 14 {
			return R14IRQ
		}
		return Reg(n)
	case 3: // SVC
		if n == 13 {
			return R13SVC
		}
		if n == 14 {
			return R14SVC
		}
		return Reg(n)
	case 4: // ABT
		if n == 13 {
			return R13ABT
		}
		if n == 14 {
			return R14ABT
		}
		return Reg(n)
	case 5: // UND
		if n == 13 {
			return R13UND
		}
		if n == 14 {
			return R14UND
		}
		return Reg(n)
	case 6: // MON
		if n == 13 {
			return R13MON
		}
		if n == 14 {
			return R14MON
		}
		return Reg(n)
	case 7: // HYP: only SP is banked; LR is shared with USR
		if n == 13 {
			return R13HYP
		}
		return Reg(n)
	}
	return Reg(n)
}

// RawGet/RawSet access a logical slot directly, bypassing any PC or
// interworking adjustment. Used by the banking round-trip tests and by
// higher layers once they've already resolved a Reg via SlotOf.
func (f *File) RawGet(r Reg) uint64 {
	if r == PC {
		return f.PC
	}
	return f.slots[r]
}

func (f *File) RawSet(r Reg, v uint64) {
	if r == PC {
		f.PC = v
		return
	}
	f.slots[r] = v
}

// SPSRSlotForMode returns the SPSR banked slot for an AArch32 mode, or
// ok=false for USR/SYS which have no SPSR.
func SPSRSlotForMode(mode uint8) (Reg, bool) {
	switch mode {
	case ModeFIQ:
		return SPSRFIQ, true
	case ModeIRQ:
		return SPSRIRQ, true
	case ModeSVC:
		return SPSRSVC, true
	case ModeABT:
		return SPSRABT, true
	case ModeUND:
		return SPSRUND, true
	case ModeMON:
		return SPSRMON, true
	case ModeHYP:
		return SPSRHYP, true
	}
	return 0, false
}
