package a64

// PairWidth selects LDP/STP's transfer size.
type PairWidth uint8

const (
	PairWord   PairWidth = 4
	PairDouble PairWidth = 8
)

// PairAddressing computes LDP/STP's effective and writeback addresses,
// shared across its pre-indexed, post-indexed, and signed-offset forms.
type PairAddressing struct {
	Base      uint64
	Offset    int64 // already scaled by the transfer width
	PreIndex  bool
	Writeback bool
}

func (a PairAddressing) Resolve() (effective uint64, newBase uint64, writeback bool) {
	target := uint64(int64(a.Base) + a.Offset)
	if a.PreIndex {
		return target, target, a.Writeback
	}
	return a.Base, target, a.Writeback
}

// ExecuteLDP reads two consecutive elements of width w starting at
// addr, sign-extending 32-bit elements when signed is set (LDPSW).
func ExecuteLDP(c *Core, w PairWidth, addr uint64, signed bool) (lo, hi uint64, err error) {
	if w == PairDouble {
		lo, err = c.ReadU64(addr)
		if err != nil {
			return 0, 0, err
		}
		hi, err = c.ReadU64(addr + 8)
		return lo, hi, err
	}
	var a, b uint32
	a, err = c.ReadU32(addr)
	if err != nil {
		return 0, 0, err
	}
	b, err = c.ReadU32(addr + 4)
	if err != nil {
		return 0, 0, err
	}
	if signed {
		return uint64(int64(int32(a))), uint64(int64(int32(b))), nil
	}
	return uint64(a), uint64(b), nil
}

// ExecuteSTP writes two consecutive elements of width w starting at
// addr.
func ExecuteSTP(c *Core, w PairWidth, addr uint64, lo, hi uint64) error {
	if w == PairDouble {
		if err := c.WriteU64(addr, lo); err != nil {
			return err
		}
		return c.WriteU64(addr+8, hi)
	}
	if err := c.WriteU32(addr, uint32(lo)); err != nil {
		return err
	}
	return c.WriteU32(addr+4, uint32(hi))
}
