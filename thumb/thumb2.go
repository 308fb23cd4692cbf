package thumb

import "github.com/BinaryMelodies/all-the-arm/arm32"

// ExecuteWideDataProcessing implements the Thumb-2 32-bit encodings of
// the data-processing opcodes that have an arm32.Opcode (e.g. ADD.W,
// MOVW/MOVT's underlying MOV): once the operand2 and shifter carry are
// decoded, the semantics are identical to the 16-bit form, so this is a
// thin rename kept for callers that only ever see 32-bit Thumb-2 words.
func ExecuteWideDataProcessing(c *Core, op arm32.Opcode, s bool, rn, rd uint8, operand2 uint32, shifterCarry bool) error {
	return arm32.ExecuteDataProcessing(c, op, s, rn, rd, operand2, shifterCarry)
}

// ExecuteMOVW loads a 16-bit immediate into the low half of Rd,
// zeroing the high half (unlike MOVT, which leaves the low half
// untouched).
func ExecuteMOVW(c *Core, rd uint8, imm16 uint32) error {
	return arm32.ExecuteDataProcessing(c, arm32.MOV, false, rd, rd, imm16&0xffff, false)
}

// ExecuteMOVT writes a 16-bit immediate into the high half of Rd,
// leaving the low half unchanged.
func ExecuteMOVT(c *Core, rd uint8, imm16 uint32) error {
	low := c.Regs.A32Get(rd, c.Cfg.Version) & 0xffff
	value := (imm16&0xffff)<<16 | low
	return arm32.ExecuteDataProcessing(c, arm32.MOV, false, rd, rd, value, false)
}

// ExecuteWideLoadStore implements the Thumb-2 LDR/STR{B,H,SB,SH}.W and
// literal-pool forms by delegating straight to arm32's width-
// polymorphic primitives once the 12-bit-immediate or register-shifted
// address has been resolved.
func ExecuteWideLoadStore(c *Core, width arm32.LoadStoreWidth, load bool, addr uint32, storeValue uint32) (uint32, error) {
	if load {
		return arm32.ExecuteLoad(c, width, addr, false)
	}
	return 0, arm32.ExecuteStore(c, width, addr, storeValue, false)
}

// ExecuteIT decodes the IT instruction's 8-bit immediate directly into
// PSTATE.IT: Thumb-2's IT block setup has no runtime semantics beyond
// priming the state ITAdvance/ITCondition consume.
func ExecuteIT(c *Core, firstCondAndMask uint8) {
	c.Regs.IT = firstCondAndMask
}
