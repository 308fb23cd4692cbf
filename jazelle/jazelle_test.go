package jazelle

import (
	"testing"

	"github.com/BinaryMelodies/all-the-arm/arm32"
	"github.com/BinaryMelodies/all-the-arm/armmem"
	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/stretchr/testify/require"
)

func newCore() *arm32.Core {
	regs := &armstate.File{}
	regs.Mode = armstate.ModeSVC
	bus := armmem.NewBus(armmem.NewPageBackend())
	return &arm32.Core{
		Regs:      regs,
		Bus:       bus,
		Cfg:       armstate.Config{Version: armstate.V7, SupportedISA: armstate.ISAArm32 | armstate.ISAThumb | armstate.ISAJazelle},
		AlignMode: armmem.AlignNative,
	}
}

func TestPushPopWordStaysInFastStack(t *testing.T) {
	c := newCore()
	require.NoError(t, PushWord(c, 42))
	require.Equal(t, uint32(1), FastStackSize(c))
	v, err := PopWord(c)
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)
	require.Equal(t, uint32(0), FastStackSize(c))
}

func TestPushWordSpillsToMemoryPastFour(t *testing.T) {
	c := newCore()
	c.Regs.A32Set(RegTOS, c.Cfg.Version, 0x1000)
	for i := uint32(0); i < 5; i++ {
		require.NoError(t, PushWord(c, i))
	}
	require.Equal(t, uint32(4), FastStackSize(c))
	v, err := PopWord(c)
	require.NoError(t, err)
	require.Equal(t, uint32(4), v)
}

func TestGetLocalZeroUsesShadowRegister(t *testing.T) {
	c := newCore()
	c.Regs.A32Set(RegLOC, c.Cfg.Version, 0x2000)
	require.NoError(t, SetLocal(c, 0, 7))
	v, err := GetLocal(c, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)
	require.Equal(t, uint32(7), uint32(c.Regs.A32Get(RegLOC0, c.Cfg.Version)))
}

func TestArrayLengthRaisesOnNullReference(t *testing.T) {
	c := newCore()
	_, err := ArrayLength(c, ArrayLayout{}, 0)
	require.Error(t, err)
}

func TestArrayElementAddressRaisesOutOfBounds(t *testing.T) {
	c := newCore()
	layout := ArrayLayout{LengthOffset: 4, ElementOffset: 8, FlatArray: true}
	arrayAddr := uint32(0x3000)
	require.NoError(t, arm32.ExecuteStore(c, arm32.WidthWord, arrayAddr+4, 2, false))
	_, err := ArrayElementAddress(c, layout, arrayAddr, 2, 4)
	require.Error(t, err)
	addr, err := ArrayElementAddress(c, layout, arrayAddr, 1, 4)
	require.NoError(t, err)
	require.Equal(t, arrayAddr+8+4, addr)
}

func TestCheckInvokeDepthRequiresArguments(t *testing.T) {
	c := newCore()
	require.Error(t, CheckInvokeDepth(c, 1))
	require.NoError(t, PushWord(c, 1))
	require.NoError(t, CheckInvokeDepth(c, 1))
}
