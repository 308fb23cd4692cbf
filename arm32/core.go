package arm32

import (
	"fmt"

	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/coproc"
)

// Core bundles the register file, memory bus, and coprocessor table
// the AArch32 semantics functions operate on, the armstate/armmem
// abstractions shared with every other ISA package.
type Core struct {
	Regs      *armstate.File
	Bus       *armmem.Bus
	Coprocs   *coproc.Table
	Cfg       armstate.Config
	Endian    armmem.Endian
	AlignMode armmem.AlignMode
}

// GetRegister/SetRegister/ReadWord/WriteWord implement coproc.Processor.
func (c *Core) GetRegister(n uint8) uint64 { return uint64(c.Regs.A32Get(n, c.Cfg.Version)) }
func (c *Core) SetRegister(n uint8, v uint64) {
	c.Regs.A32Set(n, c.Cfg.Version, uint32(v))
}
func (c *Core) ReadWord(addr uint64) (uint32, error) {
	return c.Bus.ReadU32(addr, c.Endian, c.privileged(), c.AlignMode)
}
func (c *Core) WriteWord(addr uint64, v uint32) error {
	return c.Bus.WriteU32(addr, v, c.Endian, c.privileged(), c.AlignMode)
}

func (c *Core) privileged() bool {
	return c.Regs.Mode != armstate.ModeUSR
}

// ErrUndefinedInstruction is raised when a coprocessor gateway finds no
// registered handler for the requested coprocessor number.
var ErrUndefinedInstruction = fmt.Errorf("undefined instruction")
