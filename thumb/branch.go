package thumb

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armstate"
)

// ExecuteConditionalBranch implements Thumb format 16 (Bcc
// label), reusing arm32's condition evaluator directly.
func ExecuteConditionalBranch(p armstate.PSTATE, cond uint8) bool {
	return arm32.ConditionMet(cond, p)
}

// ExecuteCBZ implements the Thumb-2 CBZ/CBNZ compare-and-branch forms:
// branches when Rn==0 (nonzero=false) or Rn!=0 (nonzero=true).
func ExecuteCBZ(rnValue uint32, nonzero bool) bool {
	if nonzero {
		return rnValue != 0
	}
	return rnValue == 0
}

// ExecuteTBBTBH computes the Thumb-2 table-branch (TBB/TBH) target from
// a table entry the caller has already read: pc-relative and doubled
// per the encoding's "<<1" rule. It does not read the table itself.
func ExecuteTBBTBH(pc uint32, entry uint32) uint32 {
	return pc + entry*2
}
