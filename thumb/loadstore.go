package thumb

import "github.com/BinaryMelodies/all-the-arm/arm32"

// ExecuteLoadStoreRegisterOffset implements Thumb formats 7/8
// (LDR/STR{B,H}/LDRSB/LDRSH Rd, [Rb, Ro]) by delegating to arm32's
// width-polymorphic load/store once the address is computed.
func ExecuteLoadStoreRegisterOffset(c *Core, width arm32.LoadStoreWidth, load bool, addr uint32, rd uint8, storeValue uint32) (uint32, error) {
	if load {
		return arm32.ExecuteLoad(c, width, addr, false)
	}
	return 0, arm32.ExecuteStore(c, width, addr, storeValue, false)
}

// ExecutePCRelativeLoad implements Thumb format 6 (LDR Rd, [PC, #imm]),
// word-aligning PC down to a 4-byte boundary first.
func ExecutePCRelativeLoad(c *Core, pc uint32, imm uint32) (uint32, error) {
	addr := (pc &^ 3) + imm
	return arm32.ExecuteLoad(c, arm32.WidthWord, addr, false)
}

// ExecutePushPop implements Thumb format 14 (PUSH/POP {reglist, LR/PC}),
// reusing arm32's block transfer with the Thumb-specific fixed mode
// (full-descending via SP, matching PUSH/POP's ARM equivalents STMDB/
// LDMIA).
func ExecutePushPop(c *Core, sp uint32, regMask uint16, pop bool) (uint32, error) {
	if pop {
		return arm32.ExecuteLDM(c, sp, regMask, arm32.IA, true)
	}
	return arm32.ExecuteSTM(c, sp, regMask, arm32.DB, true)
}

// ExecuteLoadStoreMultiple implements Thumb format 15 (STMIA/LDMIA
// Rb!, {reglist}).
func ExecuteLoadStoreMultiple(c *Core, base uint32, regMask uint16, load bool) (uint32, error) {
	if load {
		return arm32.ExecuteLDM(c, base, regMask, arm32.IA, true)
	}
	return arm32.ExecuteSTM(c, base, regMask, arm32.IA, true)
}
