// Package a64 implements AArch64 (A64) instruction semantics: the
// general-purpose data-processing forms, conditional select family,
// load/store pair, bitmask-immediate decode, and bitfield move
// operations that have no AArch32 analogue.
package a64

import (
	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/coproc"
)

// Core bundles the register file, memory bus, and coprocessor table
// A64 semantics operate on, the AArch64 counterpart to arm32.Core.
type Core struct {
	Regs      *armstate.File
	Bus       *armmem.Bus
	Coprocs   *coproc.Table
	Cfg       armstate.Config
	Endian    armmem.Endian
	AlignMode armmem.AlignMode
}

func (c *Core) privileged() bool { return c.Regs.EL != 0 }

// GetRegister/SetRegister/ReadWord/WriteWord implement coproc.Processor
// for the few legacy AArch32 coprocessor accesses that remain callable
// from AArch64 system instructions (e.g. a debug coprocessor probed via
// MRS on a mapped system register).
func (c *Core) GetRegister(n uint8) uint64   { return c.Regs.A64Get(n, true) }
func (c *Core) SetRegister(n uint8, v uint64) { c.Regs.A64Set(n, true, v) }
func (c *Core) ReadWord(addr uint64) (uint32, error)  { return c.ReadU32(addr) }
func (c *Core) WriteWord(addr uint64, v uint32) error { return c.WriteU32(addr, v) }

func (c *Core) ReadU64(addr uint64) (uint64, error) {
	return c.Bus.ReadU64(addr, c.Endian, c.privileged(), c.AlignMode)
}

func (c *Core) WriteU64(addr uint64, v uint64) error {
	return c.Bus.WriteU64(addr, v, c.Endian, c.privileged(), c.AlignMode)
}

func (c *Core) ReadU32(addr uint64) (uint32, error) {
	return c.Bus.ReadU32(addr, c.Endian, c.privileged(), c.AlignMode)
}

func (c *Core) WriteU32(addr uint64, v uint32) error {
	return c.Bus.WriteU32(addr, v, c.Endian, c.privileged(), c.AlignMode)
}
