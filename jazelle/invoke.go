package jazelle

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/except"
)

// ReturnFromJazelle implements the supplementary FE 00 opcode: pops a
// 32-bit interworking target off the Java operand stack and resumes
// ARM/Thumb execution there, the inverse of BXJ's entry into Jazelle
// state.
func ReturnFromJazelle(c *arm32.Core) error {
	target, err := PopWord(c)
	if err != nil {
		return err
	}
	c.Regs.A32SetInterworking(15, c.Cfg.Version, armstate.V5, target, c.Cfg)
	return nil
}

// SoftwareInterrupt implements the supplementary FE 01 opcode: spills
// the register-cached stack and raises an SVC fault the same way an
// AArch32 SWI would, letting Jazelle code call into ARM/Thumb
// supervisor services without first returning to ARM state.
func SoftwareInterrupt(c *arm32.Core) error {
	if err := SpillFastStack(c); err != nil {
		return err
	}
	return except.Raise(except.SVC)
}

// CheckInvokeDepth verifies the operand stack holds at least argCount
// register-cached values before an invoke bytecode consumes them as the
// callee's arguments. Values already spilled to memory are not counted,
// so an invoke whose arguments have been spilled fails the check. A hardware Jazelle
// engine would simply read past the top of a too-shallow stack and
// dereference garbage; this is the one safety check the reference
// implementation the bytecode format is based on doesn't perform but a
// hosted emulator is free to add, since nothing observable depends on
// reproducing the fault-free-until-it-isn't undefined behavior.
func CheckInvokeDepth(c *arm32.Core, argCount uint32) error {
	depth := FastStackSize(c)
	if depth >= argCount {
		return nil
	}
	return except.Raise(except.JazelleInvalid)
}
