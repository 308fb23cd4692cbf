package armstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestA32SetInterworkingMasksPCWhenGateFails checks that a write to PC
// below the interworking version gate still applies the current ISA's
// PC mask instead of leaving bit 1 set, the misalignment a pre-v5/v7
// core would otherwise see.
func TestA32SetInterworkingMasksPCWhenGateFails(t *testing.T) {
	cfg := Config{Version: V4, SupportedISA: ISAArm32 | ISAThumb}
	var f File
	f.RW = 32
	f.JT = JTArm

	f.A32SetInterworking(15, V4, V5, 0x1003, cfg)

	require.Equal(t, uint64(0x1000), f.PC)
	require.Equal(t, JTArm, f.JT)
}

// TestA32SetInterworkingMasksPCForCurrentThumbState checks the same
// gate-failure path when the core is currently in Thumb state: the
// mask should follow Thumb's &^1 rule, not ARM's &^3.
func TestA32SetInterworkingMasksPCForCurrentThumbState(t *testing.T) {
	cfg := Config{Version: V4, SupportedISA: ISAArm32 | ISAThumb}
	var f File
	f.RW = 32
	f.JT = JTThumb

	f.A32SetInterworking(15, V4, V5, 0x1003, cfg)

	require.Equal(t, uint64(0x1002), f.PC)
	require.Equal(t, JTThumb, f.JT)
}

// TestA32SetInterworkingSwitchesISAWhenGatePasses checks the normal
// interworking path is unaffected by the gate-failure fix.
func TestA32SetInterworkingSwitchesISAWhenGatePasses(t *testing.T) {
	cfg := Config{Version: V7, SupportedISA: ISAArm32 | ISAThumb}
	var f File
	f.RW = 32
	f.JT = JTArm

	f.A32SetInterworking(15, V7, V5, 0x1003, cfg)

	require.Equal(t, uint64(0x1002), f.PC)
	require.Equal(t, JTThumb, f.JT)
}
