// Package jazelle implements the Java-bytecode execution engine's
// operand-stack cache, locals/constant-pool access, and handler-table
// dispatch, built on the same AArch32 register file and memory bus
// arm32.Core exposes: Jazelle state lives in ordinary general registers
// by convention (R4 shadows the current locals frame's word 0, R5 is
// the software handler table pointer, R6 is the full-stack top-of-
// stack pointer, R7 is the locals base, R8 is the constant-pool base),
// not in a separate register bank.
package jazelle

import "github.com/BinaryMelodies/all-the-arm/arm32"

const (
	RegLOC0 = 4
	RegSHT  = 5
	RegTOS  = 6
	RegLOC  = 7
	RegCP   = 8
)

// FastStackSize reports how many of the top-of-Java-stack values
// currently live in registers R0-R3 rather than memory, read from the
// handler-table register's size field (bits 4:2).
func FastStackSize(c *arm32.Core) uint32 {
	return (c.Regs.A32Get(RegSHT, c.Cfg.Version) >> 2) & 7
}

// FastStackTop reports which of R0-R3 holds the current top of the
// Java operand stack.
func FastStackTop(c *arm32.Core) uint32 {
	sht := c.Regs.A32Get(RegSHT, c.Cfg.Version)
	if sht&0x1c != 0 {
		return sht & 3
	}
	return 3
}

func setFastStackSizeTop(c *arm32.Core, size, top uint32) {
	if size == 0 {
		top = 0
	}
	if size > 4 {
		size = 4
	}
	sht := c.Regs.A32Get(RegSHT, c.Cfg.Version)
	sht &^= 0x1f
	sht |= top & 3
	sht |= size << 2
	c.Regs.A32Set(RegSHT, c.Cfg.Version, sht)
}

func pushWordToMemory(c *arm32.Core, value uint32) error {
	sp := c.Regs.A32Get(RegTOS, c.Cfg.Version)
	if err := arm32.ExecuteStore(c, arm32.WidthWord, sp, value, false); err != nil {
		return err
	}
	c.Regs.A32Set(RegTOS, c.Cfg.Version, sp+4)
	return nil
}

func popWordFromMemory(c *arm32.Core) (uint32, error) {
	sp := c.Regs.A32Get(RegTOS, c.Cfg.Version) - 4
	value, err := arm32.ExecuteLoad(c, arm32.WidthWord, sp, false)
	if err != nil {
		return 0, err
	}
	c.Regs.A32Set(RegTOS, c.Cfg.Version, sp)
	return value, nil
}

// SpillFastStack writes every register-cached stack value out to
// memory, emptying the fast stack (called before any instruction that
// needs the whole stack addressable in memory, e.g. a handler-table
// dispatch).
func SpillFastStack(c *arm32.Core) error {
	return spillFastStackSize(c, 0)
}

func spillFastStackSize(c *arm32.Core, destination uint32) error {
	current := FastStackSize(c)
	top := FastStackTop(c)
	if current <= destination {
		return nil
	}
	for current > destination {
		reg := (top - (current - 1)) & 3
		if err := pushWordToMemory(c, uint32(c.Regs.A32Get(uint8(reg), c.Cfg.Version))); err != nil {
			return err
		}
		current--
	}
	setFastStackSizeTop(c, destination, top)
	return nil
}

// FillFastStack reloads register-cached stack values from memory until
// at least destination of them are resident, the counterpart called
// before an instruction needs more stack depth in registers than is
// currently cached.
func FillFastStack(c *arm32.Core, destination uint32) error {
	current := FastStackSize(c)
	top := FastStackTop(c)
	if current >= destination {
		return nil
	}
	if current == 0 {
		top = destination - 1
	}
	for current < destination {
		value, err := popWordFromMemory(c)
		if err != nil {
			return err
		}
		c.Regs.A32Set(uint8((top-current)&3), c.Cfg.Version, value)
		current++
	}
	setFastStackSizeTop(c, destination, top)
	return nil
}

// PushWord pushes a 32-bit value onto the Java operand stack. The
// register cache always holds the shallowest, most-recently-pushed
// portion of the stack; once it's full the deepest cached value is
// spilled to memory to make room before the new value takes the top
// register slot, so the memory/register split never reorders values.
func PushWord(c *arm32.Core, value uint32) error {
	current := FastStackSize(c)
	if current == 4 {
		if err := spillFastStackSize(c, 3); err != nil {
			return err
		}
		current = 3
	}
	top := FastStackTop(c)
	next := (top + 1) & 3
	if current == 0 {
		next = 0
	}
	c.Regs.A32Set(uint8(next), c.Cfg.Version, value)
	setFastStackSizeTop(c, current+1, next)
	return nil
}

// PopWord pops a 32-bit value from the Java operand stack.
func PopWord(c *arm32.Core) (uint32, error) {
	current := FastStackSize(c)
	if current == 0 {
		return popWordFromMemory(c)
	}
	top := FastStackTop(c)
	value := uint32(c.Regs.A32Get(uint8(top), c.Cfg.Version))
	newTop := (top - 1) & 3
	setFastStackSizeTop(c, current-1, newTop)
	return value, nil
}

// PushDword/PopDword push and pop a 64-bit value as two consecutive
// words, high half first, matching the source's little-endian stack
// word ordering for wide types.
func PushDword(c *arm32.Core, value uint64) error {
	if err := PushWord(c, uint32(value>>32)); err != nil {
		return err
	}
	return PushWord(c, uint32(value))
}

func PopDword(c *arm32.Core) (uint64, error) {
	lo, err := PopWord(c)
	if err != nil {
		return 0, err
	}
	hi, err := PopWord(c)
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}
