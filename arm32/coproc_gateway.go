package arm32

import "github.com/BinaryMelodies/all-the-arm/coproc"

// coprocNumber extracts the 4-bit coprocessor slot from a raw CDP/LDC/
// STC/MCR/MRC/MCRR/MRRC encoding (bits 11:8 in every one of these
// encodings).
func coprocNumber(raw uint32) uint8 { return uint8((raw >> 8) & 0xf) }

// ExecuteCDP/ExecuteLDCSTC/ExecuteMCRMRC/ExecuteMCRRMRRC dispatch to the
// coprocessor table. A missing slot or a handler's own refusal both
// surface as ErrUndefinedInstruction.
func ExecuteCDP(c *Core, raw uint32) error {
	cp := c.Coprocs.Get(coprocNumber(raw))
	if cp == nil {
		return ErrUndefinedInstruction
	}
	if err := cp.CDP(c, raw); err != nil {
		return wrapCoprocError(err)
	}
	return nil
}

func ExecuteLDCSTC(c *Core, raw uint32, addr uint64, load bool) error {
	cp := c.Coprocs.Get(coprocNumber(raw))
	if cp == nil {
		return ErrUndefinedInstruction
	}
	if err := cp.LDCSTC(c, raw, addr, load); err != nil {
		return wrapCoprocError(err)
	}
	return nil
}

func ExecuteMCRMRC(c *Core, raw uint32, rd uint8, load bool) error {
	cp := c.Coprocs.Get(coprocNumber(raw))
	if cp == nil {
		return ErrUndefinedInstruction
	}
	if err := cp.MCRMRC(c, raw, rd, load); err != nil {
		return wrapCoprocError(err)
	}
	return nil
}

func ExecuteMCRRMRRC(c *Core, raw uint32, rd, rn uint8, load bool) error {
	cp := c.Coprocs.Get(coprocNumber(raw))
	if cp == nil {
		return ErrUndefinedInstruction
	}
	if err := cp.MCRRMRRC(c, raw, rd, rn, load); err != nil {
		return wrapCoprocError(err)
	}
	return nil
}

func wrapCoprocError(err error) error {
	if err == coproc.ErrUndefined {
		return ErrUndefinedInstruction
	}
	return err
}
