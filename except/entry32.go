package except

import "github.com/BinaryMelodies/all-the-arm/armstate"

// EnterA32 performs AArch32 architectural exception entry: mode
// switch, LR/SPSR save (or 26-bit PC+flags packing on pre-v4 cores),
// interrupt-mask update, and vector dispatch, table-driven across
// every AArch32 fault class.
func EnterA32(f *armstate.File, cfg armstate.Config, k Kind, oldPC uint64, highVectors bool) error {
	mode, ok := TargetModeA32(k)
	if !ok {
		return Raise(k) // not an AArch32-vectorable kind; let the caller re-raise
	}
	returnPC := oldPC + k.returnOffset()

	is26 := f.RW == 26
	oldMode := f.Mode
	oldCPSR := armstate.EncodeCPSR(f.PSTATE, cfg)

	f.Mode = mode
	if is26 {
		// Pre-v4 cores had no SPSR: pack PC and flags into LR_mode.
		packed := uint32(returnPC&0x03fffffc) | (oldCPSR & 0xf0000000) |
			boolToBit(f.I, 27) | boolToBit(f.F, 26) | uint32(oldMode&3)
		f.RawSet(armstate.SlotOf(14, mode, cfg.Version), uint64(packed))
	} else {
		f.RawSet(armstate.SlotOf(14, mode, cfg.Version), returnPC)
		if slot, ok := armstate.SPSRSlotForMode(mode); ok {
			f.RawSet(slot, uint64(oldCPSR))
		}
	}

	f.I = true
	if k == Reset || k == FIQ {
		f.F = true
	}
	f.IT = 0
	f.JT = armstate.JTArm
	if cfg.Version >= armstate.V6 {
		f.A = true
	}
	f.Monitor.Clear()

	f.PC = VectorAddressA32(k, highVectors)
	if is26 {
		f.PC &= 0x03ffffff
	}
	return nil
}

func boolToBit(b bool, bit uint) uint32 {
	if b {
		return 1 << bit
	}
	return 0
}
