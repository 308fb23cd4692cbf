package a64

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armstate"
)

// ConditionMet reuses the AArch32 condition evaluator: the 4-bit
// condition encoding and NZCV semantics are architecturally identical
// across AArch32 and AArch64.
func ConditionMet(cond uint8, p armstate.PSTATE) bool {
	return arm32.ConditionMet(cond, p)
}

// SelectOp distinguishes the four CSEL-family transforms applied to the
// "false" operand before the select.
type SelectOp uint8

const (
	CSEL SelectOp = iota
	CSINC
	CSINV
	CSNEG
)

// ExecuteConditionalSelect implements CSEL/CSINC/CSINV/CSNEG: when the
// condition holds, the true operand passes through unchanged; otherwise
// the false operand is incremented, inverted, or negated per op before
// being returned.
func ExecuteConditionalSelect(op SelectOp, cond uint8, p armstate.PSTATE, trueVal, falseVal uint64, is32 bool) uint64 {
	if ConditionMet(cond, p) {
		return mask(trueVal, is32)
	}
	switch op {
	case CSINC:
		return mask(falseVal+1, is32)
	case CSINV:
		return mask(^falseVal, is32)
	case CSNEG:
		return mask(-falseVal, is32)
	default:
		return mask(falseVal, is32)
	}
}

func mask(v uint64, is32 bool) uint64 {
	if is32 {
		return v & 0xffffffff
	}
	return v
}
