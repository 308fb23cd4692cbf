package arm32

// BlockMode is one of LDM/STM's four addressing modes.
type BlockMode uint8

const (
	IA BlockMode = iota // increment after
	IB                   // increment before
	DA                   // decrement after
	DB                   // decrement before
)

// blockStartAndStep returns the address of the lowest-numbered register
// in the mask and the base value after writeback; the transfer then
// walks upward in 4-byte steps, lowest register to lowest address,
// regardless of addressing mode.
func blockStartAndStep(base uint32, mode BlockMode, count uint32) (start uint32, finalBase uint32) {
	switch mode {
	case IA:
		return base, base + count*4
	case IB:
		return base + 4, base + count*4
	case DA:
		return base - count*4 + 4, base - count*4
	default: // DB
		return base - count*4, base - count*4
	}
}

// ExecuteLDM runs LDM over regMask (bit i -> Ri), honoring the
// lowest-register/lowest-address ordering and writeback rules.
// There is no user-bank (^-variant) option: registers are always
// written through the current mode's view. The PC bit, if set, triggers interworking
// per the caller (checked by the decoder: this function just writes
// PC normally through Core.Regs).
func ExecuteLDM(c *Core, base uint32, regMask uint16, mode BlockMode, writeback bool) (newBase uint32, err error) {
	count := uint32(popcount16(regMask))
	addr, final := blockStartAndStep(base, mode, count)
	for i := uint8(0); i < 16; i++ {
		if regMask&(1<<i) == 0 {
			continue
		}
		v, err := ExecuteLoad(c, WidthWord, addr, false)
		if err != nil {
			return base, err
		}
		c.Regs.A32Set(i, c.Cfg.Version, v)
		addr += 4
	}
	if writeback {
		return final, nil
	}
	return base, nil
}

// ExecuteSTM runs STM, mirroring ExecuteLDM's addressing. The writeback
// value is computed from the pre-transfer base.
func ExecuteSTM(c *Core, base uint32, regMask uint16, mode BlockMode, writeback bool) (newBase uint32, err error) {
	count := uint32(popcount16(regMask))
	addr, final := blockStartAndStep(base, mode, count)
	for i := uint8(0); i < 16; i++ {
		if regMask&(1<<i) == 0 {
			continue
		}
		v := c.Regs.A32Get(i, c.Cfg.Version)
		if err := ExecuteStore(c, WidthWord, addr, v, false); err != nil {
			return base, err
		}
		addr += 4
	}
	if writeback {
		return final, nil
	}
	return base, nil
}

func popcount16(v uint16) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}
