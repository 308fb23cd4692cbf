package armstate

// ISA is the instruction set currently being decoded (GLOSSARY).
type ISA uint8

const (
	ISANone ISA = iota
	Arm26
	Arm32
	Thumb
	Thumb2
	ThumbEE
	Jazelle
	Arm64
)

func (i ISA) String() string {
	switch i {
	case Arm26:
		return "ARM26"
	case Arm32:
		return "ARM32"
	case Thumb:
		return "Thumb"
	case Thumb2:
		return "Thumb2"
	case ThumbEE:
		return "ThumbEE"
	case Jazelle:
		return "Jazelle"
	case Arm64:
		return "A64"
	}
	return "none"
}

// JT is the PSTATE.jt instruction-set-state field.
type JT uint8

const (
	JTArm JT = iota
	JTThumb
	JTJazelle
	JTThumbEE
)

// PSTATE is the structured program-state value.
type PSTATE struct {
	RW   uint8 // register width: 26, 32, or 64
	Mode uint8 // AArch32 mode, 4 (really 5) bits
	EL   uint8 // AArch64 exception level, 0-3

	SP uint8 // SP bank selector (AArch64)

	F, I, A bool // interrupt-disable flags
	D       bool // debug mask

	E  bool // AArch32 endianness bit (false=LE, true=BE-8)
	GE uint8
	IT uint8

	JT JT

	Q   bool // saturation
	IL  bool // illegal execution
	SS  bool // software step
	PAN bool
	UAO bool

	N, Z, C, V bool // condition flags
}

// ISA derives the currently selected instruction set from PSTATE.
func (p PSTATE) ISA() ISA {
	if p.RW == 64 {
		return Arm64
	}
	if p.RW == 26 {
		return Arm26
	}
	switch p.JT {
	case JTArm:
		return Arm32
	case JTJazelle:
		return Jazelle
	case JTThumbEE:
		return ThumbEE
	default:
		return Thumb
	}
}

// legalJT remaps an attempted jt switch to the nearest ISA this
// configuration actually supports.
func legalJT(want JT, cfg Config) JT {
	switch want {
	case JTJazelle:
		if cfg.SupportedISA&ISAJazelle != 0 {
			return want
		}
	case JTThumbEE:
		if cfg.SupportedISA&ISAThumbEE != 0 {
			return want
		}
	case JTThumb:
		if cfg.SupportedISA&ISAThumb != 0 {
			return want
		}
	default:
		return JTArm
	}
	if cfg.SupportedISA&ISAThumb != 0 {
		return JTThumb
	}
	return JTArm
}

// SetISA programs PSTATE to switch to the requested ISA, applying the
// legality filter and fixed invariants (ARM26 forces jt=ARM and clears
// mode bits 2-3; ThumbEE requires rw=32 and exactly v7).
func (p *PSTATE) SetISA(isa ISA, cfg Config) {
	switch isa {
	case Arm64:
		if cfg.SupportedISA&ISAArm64 != 0 {
			p.RW = 64
			return
		}
	case Arm26:
		if cfg.SupportedISA&ISAArm26 != 0 {
			p.RW = 26
			p.JT = JTArm
			p.Mode &^= 0xc
			return
		}
	case Jazelle:
		p.RW = 32
		p.JT = legalJT(JTJazelle, cfg)
		return
	case ThumbEE:
		if cfg.Version == V7 {
			p.RW = 32
			p.JT = legalJT(JTThumbEE, cfg)
			return
		}
	case Thumb, Thumb2:
		p.RW = 32
		p.JT = legalJT(JTThumb, cfg)
		return
	}
	// Arm32 and any unreachable fallthrough: stay in the current ISA
	// if the target can't legally be entered.
	if isa == Arm32 {
		p.RW = 32
		p.JT = JTArm
	}
}
