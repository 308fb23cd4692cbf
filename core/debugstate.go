package core

import "github.com/BinaryMelodies/all-the-arm/armstate"

// DebugState is a snapshot of everything a debugger or trace harness
// would want to diff between steps: the general registers (read
// through whichever width the current PSTATE selects), PC, and flags.
type DebugState struct {
	Registers [31]uint64
	PC        uint64
	PSTATE    armstate.PSTATE
}

// GetDebugState snapshots the machine's visible architectural state.
func (m *Machine) GetDebugState() DebugState {
	var regs [31]uint64
	if m.Regs.RW == 64 {
		for n := uint8(0); n < 31; n++ {
			regs[n] = m.Regs.A64Get(n, true)
		}
	} else {
		for n := uint8(0); n < 15; n++ {
			regs[n] = uint64(m.Regs.A32Get(n, m.Cfg.Version))
		}
	}
	return DebugState{Registers: regs, PC: m.Regs.PC, PSTATE: m.Regs.PSTATE}
}

// RegisterDiff names one register that changed between two snapshots.
type RegisterDiff struct {
	Index    uint8
	Before   uint64
	After    uint64
}

// DebugStateDiff reports every register that differs between two
// snapshots, plus whether PC or any flag changed, the single-step
// trace view a debugger's "next" command renders.
func DebugStateDiff(before, after DebugState) (regs []RegisterDiff, pcChanged bool, flagsChanged bool) {
	for i := range before.Registers {
		if before.Registers[i] != after.Registers[i] {
			regs = append(regs, RegisterDiff{Index: uint8(i), Before: before.Registers[i], After: after.Registers[i]})
		}
	}
	pcChanged = before.PC != after.PC
	flagsChanged = before.PSTATE.N != after.PSTATE.N || before.PSTATE.Z != after.PSTATE.Z ||
		before.PSTATE.C != after.PSTATE.C || before.PSTATE.V != after.PSTATE.V
	return regs, pcChanged, flagsChanged
}
