package thumb

import (
	"testing"

	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/stretchr/testify/require"
)

func newCore() *Core {
	regs := &armstate.File{}
	regs.Mode = armstate.ModeSVC
	bus := armmem.NewBus(armmem.NewPageBackend())
	return &Core{
		Regs:      regs,
		Bus:       bus,
		Cfg:       armstate.Config{Version: armstate.V7, SupportedISA: armstate.ISAArm32 | armstate.ISAThumb},
		AlignMode: armmem.AlignNative,
	}
}

func TestITAdvanceClearsAtLastInstruction(t *testing.T) {
	p := armstate.PSTATE{IT: 0b11011000} // cond=1101, mask=1000: one instruction, last
	require.False(t, InITBlock(p.IT))
	ITAdvance(&p)
	require.Equal(t, uint8(0), p.IT)
}

func TestITAdvanceRotatesMask(t *testing.T) {
	p := armstate.PSTATE{IT: 0b11011100} // two instructions pending
	ITAdvance(&p)
	require.Equal(t, uint8(0b11011000), p.IT)
	cond, ok := ITCondition(p.IT)
	require.True(t, ok)
	require.Equal(t, uint8(0b1101), cond)
}

func TestExecuteShiftImmediateSetsCarry(t *testing.T) {
	c := newCore()
	c.Regs.A32Set(1, c.Cfg.Version, 0x80000001)
	require.NoError(t, ExecuteShiftImmediate(c, arm32.LSL, 0, 1, 1))
	require.Equal(t, uint32(2), c.Regs.A32Get(0, c.Cfg.Version))
	require.True(t, c.Regs.C)
}

func TestExecuteMOVTPreservesLowHalf(t *testing.T) {
	c := newCore()
	c.Regs.A32Set(0, c.Cfg.Version, 0x0000beef)
	require.NoError(t, ExecuteMOVT(c, 0, 0xdead))
	require.Equal(t, uint32(0xdeadbeef), c.Regs.A32Get(0, c.Cfg.Version))
}

func TestCheckNullPointerRaises(t *testing.T) {
	require.NoError(t, CheckNullPointer(4))
	require.Error(t, CheckNullPointer(0))
}

func TestCheckArrayBoundsRaises(t *testing.T) {
	require.NoError(t, CheckArrayBounds(2, 5))
	require.Error(t, CheckArrayBounds(5, 5))
}

func TestExecuteCBZ(t *testing.T) {
	require.True(t, ExecuteCBZ(0, false))
	require.False(t, ExecuteCBZ(1, false))
	require.True(t, ExecuteCBZ(1, true))
}
