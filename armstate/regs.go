package armstate

// Reg is one of the banked storage slots covering every AArch32 R0-R14
// bank plus the AArch64 SP/ELR/SPSR banks.
type Reg uint8

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13 // SP in the user/system bank
	R14 // LR in the user/system bank
	PC  // stored apart from the user-visible R15

	R8FIQ
	R9FIQ
	R10FIQ
	R11FIQ
	R12FIQ
	R13FIQ
	R14FIQ

	R13IRQ
	R14IRQ
	R13SVC
	R14SVC
	R13ABT
	R14ABT
	R13UND
	R14UND
	R13MON
	R14MON
	R13HYP
	ELRHYP

	SPEL0
	SPEL1
	SPEL2
	SPEL3

	ELREL1
	ELREL2
	ELREL3
	SPSREL1
	SPSREL2
	SPSREL3
	SPSRABT
	SPSRUND
	SPSRIRQ
	SPSRFIQ
	SPSRSVC
	SPSRMON
	SPSRHYP

	numRegs
)

// AArch32 mode constants, including the Monitor and Hyp modes.
const (
	ModeUSR uint8 = 0x10
	ModeFIQ uint8 = 0x11
	ModeIRQ uint8 = 0x12
	ModeSVC uint8 = 0x13
	ModeMON uint8 = 0x16
	ModeABT uint8 = 0x17
	ModeHYP uint8 = 0x1a
	ModeUND uint8 = 0x1b
	ModeSYS uint8 = 0x1f
)
