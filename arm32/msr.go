package arm32

import "github.com/BinaryMelodies/all-the-arm/armstate"

// ExecuteMRS reads CPSR or the current mode's SPSR.
func ExecuteMRS(c *Core, spsr bool) (uint32, error) {
	if !spsr {
		return armstate.EncodeCPSR(c.Regs.PSTATE, c.Cfg), nil
	}
	slot, ok := armstate.SPSRSlotForMode(c.Regs.Mode)
	if !ok {
		return 0, ErrUndefinedInstruction
	}
	return uint32(c.Regs.RawGet(slot)), nil
}

// fieldMask expands the 4-bit field-mask (c,x,s,f from the instruction
// encoding) into the byte-granular CPSR write mask: each bit selects
// one of the four bytes of the PSR as writable.
func fieldMask(fields uint8) uint32 {
	var mask uint32
	if fields&1 != 0 {
		mask |= 0x000000ff
	}
	if fields&2 != 0 {
		mask |= 0x0000ff00
	}
	if fields&4 != 0 {
		mask |= 0x00ff0000
	}
	if fields&8 != 0 {
		mask |= 0xff000000
	}
	return mask
}

// ExecuteMSR writes CPSR or SPSR with the given field mask. Bits
// outside fieldMask are silently left untouched.
func ExecuteMSR(c *Core, spsr bool, fields uint8, value uint32) error {
	mask := fieldMask(fields)
	if !spsr {
		decoded, err := armstate.DecodeCPSR(c.Regs.PSTATE, value, mask, c.Cfg)
		if err != nil {
			return err
		}
		c.Regs.PSTATE = decoded
		return nil
	}
	slot, ok := armstate.SPSRSlotForMode(c.Regs.Mode)
	if !ok {
		return ErrUndefinedInstruction
	}
	old := uint32(c.Regs.RawGet(slot))
	c.Regs.RawSet(slot, uint64((old&^mask)|(value&mask)))
	return nil
}
