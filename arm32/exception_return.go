package arm32

import "github.com/BinaryMelodies/all-the-arm/armstate"

// ExecuteRFE pops {PC, CPSR} from memory at addr.
func ExecuteRFE(c *Core, addr uint32) error {
	pc, err := ExecuteLoad(c, WidthWord, addr, false)
	if err != nil {
		return err
	}
	raw, err := ExecuteLoad(c, WidthWord, addr+4, false)
	if err != nil {
		return err
	}
	decoded, err := armstate.DecodeCPSR(c.Regs.PSTATE, raw, 0xffffffff, c.Cfg)
	if err != nil {
		return err
	}
	c.Regs.PSTATE = decoded
	c.Regs.PC = uint64(pc)
	return nil
}

// ExecuteSRS pushes {LR, SPSR} of the requested mode onto that mode's
// stack pointer.
func ExecuteSRS(c *Core, targetMode uint8, addr uint32) error {
	lr := c.Regs.RawGet(armstate.SlotOf(14, targetMode, c.Cfg.Version))
	spsrSlot, ok := armstate.SPSRSlotForMode(targetMode)
	var spsr uint32
	if ok {
		spsr = uint32(c.Regs.RawGet(spsrSlot))
	}
	if err := ExecuteStore(c, WidthWord, addr, uint32(lr), false); err != nil {
		return err
	}
	return ExecuteStore(c, WidthWord, addr+4, spsr, false)
}
