package except

import "github.com/BinaryMelodies/all-the-arm/armstate"

// EnterA64 performs AArch64 exception entry: it saves the return PC and
// packed CPSR to ELR_ELn/SPSR_ELn, computes the target vector from
// VBAR_ELn plus the source/class offset, and switches PSTATE to the
// target exception level with debug and interrupt masks all set.
func EnterA64(f *armstate.File, cfg armstate.Config, k Kind, oldPC uint64, highestEL uint8, fromA64 bool) error {
	currentEL := f.EL
	targetEL := TargetEL(currentEL, highestEL, k)
	returnPC := oldPC + k.returnOffset()

	oldSP1 := f.SP == 1
	oldCPSR := armstate.EncodeCPSR(f.PSTATE, cfg)

	elrSlot, spsrSlot := elrAndSPSRSlots(targetEL)
	f.RawSet(elrSlot, returnPC)
	f.RawSet(spsrSlot, uint64(oldCPSR))

	vector := VectorAddressA64(f.Sys.VBARFor(targetEL), k, currentEL, targetEL, oldSP1, fromA64)

	f.RW = 64
	f.EL = targetEL
	f.SP = 1
	f.D, f.A, f.I, f.F = true, true, true, true
	f.IT = 0
	f.SS = false
	f.IL = false
	if !f.Sys.SPANEnabled(targetEL) {
		f.PAN = true
	}
	f.PC = vector
	return nil
}

func elrAndSPSRSlots(el uint8) (armstate.Reg, armstate.Reg) {
	switch el {
	case 2:
		return armstate.ELREL2, armstate.SPSREL2
	case 3:
		return armstate.ELREL3, armstate.SPSREL3
	default:
		return armstate.ELREL1, armstate.SPSREL1
	}
}
