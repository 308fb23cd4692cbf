package thumb

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armstate"
)

// Core is the AArch32 core shared with the arm32 package; Thumb and
// Thumb-2 share the same register file, memory bus, and data-processing
// primitives as 32-bit ARM, differing only in how an opcode word
// decodes into operands.
type Core = arm32.Core

// ExecuteShiftImmediate implements the Thumb-1 LSL/LSR/ASR #imm5 forms
// (format 1), which always set flags and route through the same ALU
// carry-capture rule as the 32-bit shifted-operand case.
func ExecuteShiftImmediate(c *Core, t arm32.ShiftType, rd, rm uint8, amount uint8) error {
	value := c.Regs.A32Get(rm, c.Cfg.Version)
	result, carry := arm32.ApplyShift(t, value, amount, false, c.Regs.C)
	return arm32.ExecuteDataProcessing(c, arm32.MOV, true, 0, rd, result, carry)
}

// ExecuteAddSubRegister implements Thumb format 2 (ADD/SUB Rd, Rn, Rm
// and the #imm3 variants; operand is Rm's value or the #imm3 value, as
// the caller decoded it).
func ExecuteAddSubRegister(c *Core, sub bool, rd, rn uint8, operand uint32) error {
	op := arm32.ADD
	if sub {
		op = arm32.SUB
	}
	return arm32.ExecuteDataProcessing(c, op, true, rn, rd, operand, c.Regs.C)
}

// ExecuteMovCmpAddSubImmediate implements Thumb format 3 (MOV/CMP/ADD/
// SUB Rd, #imm8).
func ExecuteMovCmpAddSubImmediate(c *Core, op arm32.Opcode, rd uint8, imm uint8) error {
	return arm32.ExecuteDataProcessing(c, op, true, rd, rd, uint32(imm), c.Regs.C)
}

// ExecuteALUOperation implements the Thumb format 4 (two-register data
// processing) forms that map to an arm32.Opcode: AND/EOR/ADC/SBC/TST/
// CMP/CMN/ORR/BIC/MVN. The shift-by-register forms, NEG and MUL have no
// Opcode and are not handled here.
func ExecuteALUOperation(c *Core, op arm32.Opcode, rd, rm uint8) error {
	b := c.Regs.A32Get(rm, c.Cfg.Version)
	return arm32.ExecuteDataProcessing(c, op, true, rd, rd, b, c.Regs.C)
}

// ExecuteHiRegisterMove implements Thumb format 5 (ADD/CMP/MOV on any of
// R0-R15; the BX/BLX Rm forms go through ExecuteBX) without forcing flag-setting (these never set
// NZCV except the CMP form, handled by the caller choosing op=CMP).
func ExecuteHiRegisterMove(c *Core, op arm32.Opcode, setFlags bool, rd, rm uint8) error {
	b := c.Regs.A32Get(rm, c.Cfg.Version)
	return arm32.ExecuteDataProcessing(c, op, setFlags, rd, rd, b, c.Regs.C)
}

// ExecuteBX performs Thumb/Thumb-2 BX/BLX Rm interworking: the target's
// low bit selects the instruction set per armstate.A32SetInterworking's
// convention (applied from V7 on) and is cleared from the PC; bit 1 is
// left as the target has it.
func ExecuteBX(c *Core, target uint32, link bool) error {
	if link {
		ret := uint32(c.Regs.PC | 1)
		c.Regs.A32Set(14, c.Cfg.Version, ret)
	}
	c.Regs.A32SetInterworking(15, c.Cfg.Version, armstate.V7, target, c.Cfg)
	return nil
}
