package a64

import (
	"github.com/BinaryMelodies/all-the-arm/armstate"
)

// ExecuteERET restores PC and PSTATE from ELR_ELn/SPSR_ELn for the
// current exception level, the AArch64 return-from-exception
// counterpart to AArch32's RFE/exception-return data-processing form.
func ExecuteERET(c *Core, cfg armstate.Config) error {
	elr, spsr := elrAndSPSR(c.Regs.EL)
	c.Regs.PC = c.Regs.RawGet(elr)
	raw := uint32(c.Regs.RawGet(spsr))

	if raw&0x10 != 0 { // M[4]=1 selects AArch32
		decoded, err := armstate.DecodeCPSR(c.Regs.PSTATE, raw, 0xffffffff, cfg)
		if err != nil {
			return err
		}
		c.Regs.PSTATE = decoded
		c.Regs.RW = 32
		c.Regs.Mode = decoded.Mode
		return nil
	}
	c.Regs.EL = uint8(raw>>2) & 0x3
	c.Regs.SP = uint8(raw & 0x1)
	c.Regs.N = raw&(1<<31) != 0
	c.Regs.Z = raw&(1<<30) != 0
	c.Regs.C = raw&(1<<29) != 0
	c.Regs.V = raw&(1<<28) != 0
	c.Regs.D = raw&(1<<9) != 0
	c.Regs.A = raw&(1<<8) != 0
	c.Regs.I = raw&(1<<7) != 0
	c.Regs.F = raw&(1<<6) != 0
	c.Regs.RW = 64
	return nil
}

func elrAndSPSR(el uint8) (armstate.Reg, armstate.Reg) {
	switch el {
	case 2:
		return armstate.ELREL2, armstate.SPSREL2
	case 3:
		return armstate.ELREL3, armstate.SPSREL3
	default:
		return armstate.ELREL1, armstate.SPSREL1
	}
}
