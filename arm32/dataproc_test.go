package arm32

import (
	"testing"

	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/stretchr/testify/require"
)

func newTestCore() *Core {
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

func TestADDSetsFlags(t *testing.T) {
	c := newTestCore()
	c.Regs.A32Set(1, c.Cfg.Version, 0xffffffff)
	require.NoError(t, ExecuteDataProcessing(c, ADD, true, 1, 0, 1, false))
	require.Equal(t, uint32(0), c.Regs.A32Get(0, c.Cfg.Version))
	require.True(t, c.Regs.Z)
	require.True(t, c.Regs.C)
}

func TestMOVSDoesNotTouchCarryFromALU(t *testing.T) {
	c := newTestCore()
	c.Regs.C = true
	require.NoError(t, ExecuteDataProcessing(c, MOV, true, 0, 0, 0x80000000, false))
	require.True(t, c.Regs.N)
	// Logical ops only take carry from the shifter, not the ALU; with
	// shifterCarry=false here it must clear.
	require.False(t, c.Regs.C)
}

func TestCMPDoesNotStore(t *testing.T) {
	c := newTestCore()
	c.Regs.A32Set(0, c.Cfg.Version, 5)
	require.NoError(t, ExecuteDataProcessing(c, CMP, true, 0, 0, 5, false))
	require.Equal(t, uint32(5), c.Regs.A32Get(0, c.Cfg.Version))
	require.True(t, c.Regs.Z)
}
