package except

import "github.com/BinaryMelodies/all-the-arm/armstate"

// a32ModeFor gives the per-fault AArch32 target mode.
var a32ModeFor = map[Kind]uint8{
	Reset:         armstate.ModeSVC,
	Undefined:     armstate.ModeUND,
	SVC:           armstate.ModeSVC,
	PrefetchAbort: armstate.ModeABT,
	DataAbort:     armstate.ModeABT,
	Address26:     armstate.ModeSVC,
	IRQ:           armstate.ModeIRQ,
	FIQ:           armstate.ModeFIQ,
	SMC:           armstate.ModeMON,
	HVC:           armstate.ModeHYP,
	Unaligned:     armstate.ModeABT,
	UnalignedPC:   armstate.ModeABT,
}

var a32VectorOffset = map[Kind]uint32{
	Reset:         0x00,
	Undefined:     0x04,
	SVC:           0x08,
	PrefetchAbort: 0x0c,
	DataAbort:     0x10,
	Address26:     0x14,
	IRQ:           0x18,
	FIQ:           0x1c,
}

// TargetModeA32 returns the AArch32 mode a given fault enters, or
// ok=false for kinds with no AArch32 vector (Jazelle/ThumbEE faults are
// handled entirely within their own engines).
func TargetModeA32(k Kind) (uint8, bool) {
	m, ok := a32ModeFor[k]
	return m, ok
}

// VectorAddressA32 computes the vector address for an AArch32 fault,
// honoring SCTLR.V's high-vectors bit.
func VectorAddressA32(k Kind, highVectors bool) uint64 {
	base := uint64(0)
	if highVectors {
		base = 0xffff0000
	}
	off, ok := a32VectorOffset[k]
	if !ok {
		return base
	}
	return base + uint64(off)
}

// aarch64FaultOffset computes the 0x000/0x080/0x100/0x180 AArch64
// vector table offset per fault class.
func aarch64FaultOffset(k Kind) uint64 {
	switch k {
	case IRQ:
		return 0x080
	case FIQ:
		return 0x100
	case SError:
		return 0x180
	default:
		return 0x000 // synchronous: Undefined, SVC, SMC, HVC, aborts, etc.
	}
}

// aarch64SourceOffset adds the 0x000/0x200/0x400/0x600 block selecting
// same-EL-SP0, same-EL-SPx, lower-EL-A64, or lower-EL-A32.
func aarch64SourceOffset(currentEL, targetEL uint8, currentSP1 bool, fromA64 bool) uint64 {
	if currentEL == targetEL {
		if currentSP1 {
			return 0x200
		}
		return 0x000
	}
	if fromA64 {
		return 0x400
	}
	return 0x600
}

// VectorAddressA64 computes VBAR_ELn + offset.
func VectorAddressA64(vbar uint64, k Kind, currentEL, targetEL uint8, currentSP1, fromA64 bool) uint64 {
	return vbar + aarch64SourceOffset(currentEL, targetEL, currentSP1, fromA64) + aarch64FaultOffset(k)
}

// TargetEL selects the AArch64 exception level a fault should enter:
// the highest implemented EL, unless that EL is configured to run
// AArch32 (in which case the caller should use EnterA32 instead).
// highestEL is supplied by the host's EL configuration (outside this
// package's scope to model the full EL-implementation matrix).
func TargetEL(currentEL uint8, highestEL uint8, kind Kind) uint8 {
	switch kind {
	case SMC:
		return 3
	case HVC:
		if highestEL >= 2 {
			return 2
		}
	}
	if highestEL > currentEL {
		return highestEL
	}
	return currentEL
}
