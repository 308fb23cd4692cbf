package core

import (
	"testing"

	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/BinaryMelodies/all-the-arm/except"
	"github.com/stretchr/testify/require"
)

func newMachine() *Machine {
	cfg := armstate.Config{
		Version:      armstate.V7,
		SupportedISA: armstate.ISAArm32 | armstate.ISAThumb,
	}
	m := New(cfg)
	m.SetISA(armstate.Arm32)
	return m
}

func TestStepExecutesDataProcessing(t *testing.T) {
	m := newMachine()
	require.NoError(t, m.Bus.LoadBytes(0, []byte{0x05, 0x00, 0xa0, 0xe3})) // MOV r0, #5

	require.NoError(t, m.Step())

	require.Equal(t, uint32(5), m.Regs.A32Get(0, m.Cfg.Version))
	require.Equal(t, uint64(4), m.Regs.PC)
}

func TestStepDeliversUndefinedFault(t *testing.T) {
	m := newMachine()
	require.NoError(t, m.Bus.LoadBytes(0, []byte{0x00, 0x00, 0x00, 0xea})) // unconditional B, bits27:26=10

	require.NoError(t, m.Step())

	require.Equal(t, armstate.ModeUND, m.Regs.Mode)
	require.Equal(t, uint64(0x04), m.Regs.PC)
	require.True(t, m.Regs.I)
}

func TestSetISAAndCurrentISARoundTrip(t *testing.T) {
	m := newMachine()
	m.SetISA(armstate.Thumb)
	require.Equal(t, armstate.Thumb, m.CurrentISA())
}

func TestDebugCaptureSkipsVectoring(t *testing.T) {
	m := newMachine()
	m.DebugCapture = true
	require.NoError(t, m.Bus.LoadBytes(0, []byte{0x00, 0x00, 0x00, 0xea})) // unconditional B, bits27:26=10
	modeBefore := m.Regs.Mode

	err := m.Step()

	fault, ok := except.As(err)
	require.True(t, ok)
	require.Equal(t, except.Undefined, fault.Kind)
	require.Equal(t, modeBefore, m.Regs.Mode)
	require.Equal(t, uint64(4), m.Regs.PC) // fetch already advanced PC; no vector redirection happened
}

func TestNewRegistersSystemControlCoprocessors(t *testing.T) {
	m := newMachine()
	require.NotNil(t, m.Coprocs.Get(15))
	require.NotNil(t, m.Coprocs.Get(14))
	require.Nil(t, m.Coprocs.Get(10))

	vfp := New(armstate.Config{
		Version:      armstate.V7,
		SupportedISA: armstate.ISAArm32,
		Features:     armstate.FeatureVFP,
	})
	require.NotNil(t, vfp.Coprocs.Get(10))
	require.NotNil(t, vfp.Coprocs.Get(11))
}
