// Package arm32 implements the shared 26/32-bit AArch32 instruction
// semantics onto armstate.File/armmem.Bus so the same semantics serve
// every banked mode and every endianness policy.
package arm32

import "github.com/BinaryMelodies/all-the-arm/armstate"

var conditionNames = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs",
	"vc", "hi", "ls", "ge", "lt", "gt", "le", "al", "nv"}

// ConditionName returns the disassembly mnemonic suffix for a 4-bit
// condition field.
func ConditionName(cond uint8) string {
	return conditionNames[cond&0xf]
}

// ConditionMet evaluates one of the 16 condition mnemonics against
// PSTATE's NZCV flags. NV is always false on v5+; earlier versions
// treat it as reserved and this function still reports false, since no
// semantics should ever execute under it.
func ConditionMet(cond uint8, p armstate.PSTATE) bool {
	switch cond {
	case 0:
		return p.Z
	case 1:
		return !p.Z
	case 2:
		return p.C
	case 3:
		return !p.C
	case 4:
		return p.N
	case 5:
		return !p.N
	case 6:
		return p.V
	case 7:
		return !p.V
	case 8:
		return p.C && !p.Z
	case 9:
		return !p.C || p.Z
	case 10:
		return p.N == p.V
	case 11:
		return p.N != p.V
	case 12:
		return p.Z && (p.N == p.V)
	case 13:
		return !p.Z || (p.N != p.V)
	case 14:
		return true
	}
	return false // NV
}
