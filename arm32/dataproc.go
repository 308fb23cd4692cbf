package arm32

import "github.com/BinaryMelodies/all-the-arm/armstate"

// ExecuteDataProcessing runs one of the 16 opcodes, including the
// Rd=R15,S=1 "return from exception" special case in
// both 32-bit (CPSR<-SPSR) and ARM26 (restore I/F/mode from the result)
// forms. operand2/shifterCarry are the already-decoded operand-2 value
// and its shifter carry-out (Operand2Immediate/Operand2Shifted).
func ExecuteDataProcessing(c *Core, op Opcode, s bool, rn, rd uint8,
	operand2 uint32, shifterCarry bool) error {
	a := c.Regs.A32Get(rn, c.Cfg.Version)
	res := Evaluate(op, a, operand2, c.Regs.C)

	if rd == 15 && s {
		if c.Regs.RW == 26 {
			c.Regs.SetCPSRNZCV(res.Value, c.Regs.PSTATE, c.Cfg)
			c.Regs.A32Set(15, c.Cfg.Version, res.Value)
			return nil
		}
		spsrSlot, ok := armstate.SPSRSlotForMode(c.Regs.Mode)
		if ok {
			spsr := c.Regs.RawGet(spsrSlot)
			decoded, err := armstate.DecodeCPSR(c.Regs.PSTATE, uint32(spsr), 0xffffffff, c.Cfg)
			if err != nil {
				return err
			}
			c.Regs.PSTATE = decoded
		}
		if res.Store {
			c.Regs.A32Set(15, c.Cfg.Version, res.Value)
		}
		return nil
	}

	if res.Store {
		c.Regs.A32SetInterworking(rd, c.Cfg.Version, armstate.V7, res.Value, c.Cfg)
	}
	if !s {
		return nil
	}
	c.Regs.Z = res.Value == 0
	c.Regs.N = res.Value&0x80000000 != 0
	if res.TouchesCV {
		c.Regs.C = res.Carry
		c.Regs.V = res.Overflow
	} else {
		c.Regs.C = shifterCarry
	}
	return nil
}
