package jazelle

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
)

// UpdateLocals refreshes the R4 locals-word-0 shadow from memory,
// called whenever the locals base (R7) changes so subsequent local-0
// accesses can stay a register read.
func UpdateLocals(c *arm32.Core) error {
	base := c.Regs.A32Get(RegLOC, c.Cfg.Version)
	value, err := arm32.ExecuteLoad(c, arm32.WidthWord, base, false)
	if err != nil {
		return err
	}
	c.Regs.A32Set(RegLOC0, c.Cfg.Version, value)
	return nil
}

// GetLocal reads local variable slot index (4 bytes each, growing
// upward from the locals base); index 0 is served from the R4 shadow
// without touching memory.
func GetLocal(c *arm32.Core, index uint32) (uint32, error) {
	if index == 0 {
		return uint32(c.Regs.A32Get(RegLOC0, c.Cfg.Version)), nil
	}
	base := c.Regs.A32Get(RegLOC, c.Cfg.Version)
	return arm32.ExecuteLoad(c, arm32.WidthWord, base+index*4, false)
}

// SetLocal writes local variable slot index, refreshing the R4 shadow
// when index 0 is written.
func SetLocal(c *arm32.Core, index uint32, value uint32) error {
	base := c.Regs.A32Get(RegLOC, c.Cfg.Version)
	if err := arm32.ExecuteStore(c, arm32.WidthWord, base+index*4, value, false); err != nil {
		return err
	}
	if index == 0 {
		c.Regs.A32Set(RegLOC0, c.Cfg.Version, value)
	}
	return nil
}

// ConstantPoolEntry reads a 32-bit constant-pool slot relative to the
// constant-pool base register (R8).
func ConstantPoolEntry(c *arm32.Core, index uint32) (uint32, error) {
	base := c.Regs.A32Get(RegCP, c.Cfg.Version)
	return arm32.ExecuteLoad(c, arm32.WidthWord, base+index*4, false)
}
