package arm32

// ExecuteLDREX performs the exclusive-load half of the LDREX family:
// it opens a reservation covering [addr, addr+size) and returns the
// loaded value. size==8 serves LDREXD via a pair of
// word loads (lo in the low 32 bits, hi in the high 32 bits of the
// returned uint64).
func ExecuteLDREX(c *Core, addr uint32, size uint32) (uint64, error) {
	if size == 8 {
		lo, hi, err := ExecuteLoadDoubleword(c, addr, false)
		if err != nil {
			return 0, err
		}
		c.Regs.Monitor.Reserve(uint64(addr), 8)
		return uint64(hi)<<32 | uint64(lo), nil
	}
	v, err := ExecuteLoad(c, widthForSize(size), addr, false)
	if err != nil {
		return 0, err
	}
	c.Regs.Monitor.Reserve(uint64(addr), uint64(size))
	return uint64(v), nil
}

// ExecuteSTREX performs the exclusive-store half. It returns status=0
// on success (monitor held & write committed) or status=1 on failure,
// and always clears the monitor afterward.
func ExecuteSTREX(c *Core, addr uint32, size uint32, value uint64) (status uint32, err error) {
	defer c.Regs.Monitor.Clear()
	if !c.Regs.Monitor.IsOpen(uint64(addr), uint64(size)) {
		return 1, nil
	}
	if size == 8 {
		if err := ExecuteStoreDoubleword(c, addr, uint32(value), uint32(value>>32), false); err != nil {
			return 1, err
		}
		return 0, nil
	}
	if err := ExecuteStore(c, widthForSize(size), addr, uint32(value), false); err != nil {
		return 1, err
	}
	return 0, nil
}

// ExecuteCLREX clears the exclusive monitor unconditionally.
func ExecuteCLREX(c *Core) {
	c.Regs.Monitor.Clear()
}

func widthForSize(size uint32) LoadStoreWidth {
	switch size {
	case 1:
		return WidthByte
	case 2:
		return WidthHalf
	default:
		return WidthWord
	}
}
