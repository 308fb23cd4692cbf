package arm32

// Operand2Immediate decodes the 12-bit immediate operand-2 form
// (8-bit value rotated right by 2*rot). carryOut reports the
// rotation's side effect, applied by the caller only when the
// instruction sets flags and rot != 0.
func Operand2Immediate(imm8 uint8, rot uint8, carryIn bool) (value uint32, carryOut bool) {
	if rot == 0 {
		return uint32(imm8), carryIn
	}
	shift := uint(rot) * 2
	v := uint32(imm8)
	rotated := (v >> shift) | (v << (32 - shift))
	return rotated, rotated&0x80000000 != 0
}

// Operand2Shifted decodes the register-shifted operand-2 form: a shift
// amount that is either a 5-bit immediate or the low byte of a
// register (ApplyShift's byRegister flag distinguishes the LSR#0/ASR#0/
// ROR#0 special encodings).
func Operand2Shifted(t ShiftType, value uint32, amount uint8, byRegister, carryIn bool) (uint32, bool) {
	return ApplyShift(t, value, amount, byRegister, carryIn)
}
