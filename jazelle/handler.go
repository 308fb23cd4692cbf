package jazelle

import (
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/except"
)

// ExceptionIndex enumerates the handler-table slots an unsupported or
// faulting bytecode jumps to, addressed as (SHT & 0xFFFFF000) +
// (index << 2).
type ExceptionIndex uint32

const (
	ExcNullPtr          ExceptionIndex = 0x100
	ExcOutOfBounds       ExceptionIndex = 0x101
	ExcJazelleDisabled   ExceptionIndex = 0x102
	ExcJazelleInvalid    ExceptionIndex = 0x103
	ExcPrefetchAbort     ExceptionIndex = 0x104
)

var exceptionFault = map[ExceptionIndex]except.Kind{
	ExcNullPtr:        except.JazelleNullPtr,
	ExcOutOfBounds:     except.JazelleOutOfBounds,
	ExcJazelleDisabled: except.JazelleDisabled,
	ExcJazelleInvalid:  except.JazelleInvalid,
	ExcPrefetchAbort:   except.JazellePrefetchAbort,
}

// EnterHandler spills the register-cached operand stack and transfers
// control to the handler-table entry for index, the software-trap path
// every bytecode a hardware Jazelle engine doesn't implement falls
// back to. oldPC is restored into LR before the jump so the handler can
// resume the interpreter loop at the faulting instruction.
func EnterHandler(c *arm32.Core, index ExceptionIndex, oldPC uint32) error {
	if err := SpillFastStack(c); err != nil {
		return err
	}
	c.Regs.PC = uint64(oldPC)
	c.Regs.A32Set(14, c.Cfg.Version, oldPC)
	c.Regs.JT = armstate.JTArm
	sht := c.Regs.A32Get(RegSHT, c.Cfg.Version)
	target := (sht &^ 0xfff) + (uint32(index) << 2)
	c.Regs.A32Set(15, c.Cfg.Version, target)
	return nil
}

// Raise maps a handler-table exception index to the architectural fault
// kind it represents, for callers that would rather surface it through
// the ordinary fault-return path than a software handler jump (e.g. a
// host that never populated the handler table).
func Raise(index ExceptionIndex) error {
	if k, ok := exceptionFault[index]; ok {
		return except.Raise(k)
	}
	return except.Raise(except.JazelleUndefined)
}
