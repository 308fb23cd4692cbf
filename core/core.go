// Package core wires the register file, memory bus, coprocessor table,
// and per-ISA decoders into a single steppable machine, the public
// entry point driving every instruction set and fault class this
// module models.
package core

import (
	"github.com/BinaryMelodies/all-the-arm/a64"
	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armisa"
	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/coproc"
	"github.com/BinaryMelodies/all-the-arm/except"
	"github.com/ethereum/go-ethereum/log"
)

// Machine bundles every piece of state a running core needs and is the
// single site that turns a raised except.Fault into architectural
// exception entry, an ordinary Go error check in place of a signal or
// longjmp-based trap.
type Machine struct {
	Regs    *armstate.File
	Bus     *armmem.Bus
	Coprocs *coproc.Table
	Cfg     armstate.Config

	Endian      armmem.Endian
	AlignMode   armmem.AlignMode
	HighVectors bool
	HighestEL   uint8

	// DebugCapture, when set, makes Step surface a raised fault to the
	// caller as an *except.Fault instead of performing architectural
	// exception entry, so a debugger can inspect the fault kind without
	// the mode switch, banked-register save, and PC redirection a real
	// vector would perform.
	DebugCapture bool
}

// New constructs a Machine with a fresh register file and page-backed
// bus, ready to have its entry point configured before the first Step.
func New(cfg armstate.Config) *Machine {
	m := &Machine{
		Regs:      &armstate.File{},
		Bus:       armmem.NewBus(armmem.NewPageBackend()),
		Coprocs:   &coproc.Table{},
		Cfg:       cfg,
		Endian:    armmem.Little,
		AlignMode: armmem.AlignNative,
	}
	m.registerCoprocessors()
	return m
}

// registerCoprocessors installs the system-control coprocessors (CP14/
// CP15), always present, plus the FPA and VFP stub coprocessors when
// the configuration enables those features. Each slot registered here
// gets an Unimplemented stand-in rather than being left nil (all other
// slots stay nil), so an MCR/MRC to
// an architecturally-defined-but-unmodeled coprocessor number raises
// the same ErrUndefined a populated-but-partial coprocessor would for
// an operation it doesn't implement, instead of the decoder's own
// missing-slot fallback.
func (m *Machine) registerCoprocessors() {
	m.Coprocs.Register(coproc.Unimplemented{Num: 14})
	m.Coprocs.Register(coproc.Unimplemented{Num: 15})
	if m.Cfg.Has(armstate.FeatureFPA) {
		m.Coprocs.Register(coproc.Unimplemented{Num: 1})
		m.Coprocs.Register(coproc.Unimplemented{Num: 2})
	}
	if m.Cfg.Has(armstate.FeatureVFP) {
		m.Coprocs.Register(coproc.Unimplemented{Num: 10})
		m.Coprocs.Register(coproc.Unimplemented{Num: 11})
	}
}

// SetISA forces the current instruction set, the host-driven equivalent
// of a BX/BLX/BXJ interworking branch (used to seed a core's entry
// point before its first Step).
func (m *Machine) SetISA(isa armstate.ISA) {
	m.Regs.SetISA(isa, m.Cfg)
}

// CurrentISA reports the instruction set the next Step will decode.
func (m *Machine) CurrentISA() armstate.ISA {
	return m.Regs.ISA()
}

func (m *Machine) arm32Core() *arm32.Core {
	return &arm32.Core{
		Regs: m.Regs, Bus: m.Bus, Coprocs: m.Coprocs, Cfg: m.Cfg,
		Endian: m.Endian, AlignMode: m.AlignMode,
	}
}

func (m *Machine) a64Core() *a64.Core {
	return &a64.Core{
		Regs: m.Regs, Bus: m.Bus, Coprocs: m.Coprocs, Cfg: m.Cfg,
		Endian: m.Endian, AlignMode: m.AlignMode,
	}
}

// Step fetches, decodes, and executes exactly one instruction. A
// raised fault from decode or execution is caught here and, unless
// DebugCapture is set, converted into architectural exception entry
// rather than propagated to the caller, the single instruction-
// boundary checkpoint callers can rely on.
func (m *Machine) Step() error {
	isa := m.Regs.ISA()
	fetched, err := armisa.Fetch(m.Regs, m.Bus, m.Endian, m.Cfg.Version)
	if err != nil {
		log.Debug("fetch failed", "pc", m.Regs.PC, "err", err)
		return m.deliver(except.Raise(except.PrefetchAbort), fetched64(m.Regs.PC))
	}

	err = m.execute(isa, fetched)
	if err == nil {
		return nil
	}
	return m.deliver(err, fetched.OldPC)
}

func fetched64(pc uint64) uint64 { return pc }

// deliver routes a raised fault to the right entry sequence for the
// current register width, logging the transition before control
// passes to the vector.
func (m *Machine) deliver(err error, oldPC uint64) error {
	fault, ok := except.As(err)
	if !ok {
		return err
	}
	log.Debug("fault raised", "kind", fault.Kind.String(), "pc", oldPC)
	if m.DebugCapture {
		return fault
	}
	if m.Regs.RW == 64 {
		fromA64 := m.Regs.ISA() == armstate.Arm64
		return except.EnterA64(m.Regs, m.Cfg, fault.Kind, oldPC, m.HighestEL, fromA64)
	}
	return except.EnterA32(m.Regs, m.Cfg, fault.Kind, oldPC, m.HighVectors)
}
