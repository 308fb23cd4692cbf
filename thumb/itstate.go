// Package thumb implements Thumb, Thumb-2, and ThumbEE semantics on top
// of the same Core the arm32 package operates, reusing its ALU, shift,
// and load/store primitives for the forms that are identical once
// decoded.
package thumb

import "github.com/BinaryMelodies/all-the-arm/armstate"

// ITAdvance rotates the IT block state one instruction forward, clearing
// it once the low nibble of the condition mask reaches 0b1000 (no
// instructions left in the block).
func ITAdvance(p *armstate.PSTATE) {
	if p.IT&0x0f == 0 {
		return
	}
	if p.IT&0x07 == 0 {
		p.IT = 0
		return
	}
	p.IT = (p.IT & 0xe0) | ((p.IT << 1) & 0x1f)
}

// ITCondition returns the 4-bit condition code governing the next
// instruction inside an active IT block, or ok=false outside one.
func ITCondition(it uint8) (cond uint8, ok bool) {
	if it&0x0f == 0 {
		return 0, false
	}
	return it >> 4, true
}

// InITBlock reports whether IT holds an active block (any instruction
// other than the last still pending).
func InITBlock(it uint8) bool {
	return it&0x0f != 0 && it&0x0f != 0x08
}
