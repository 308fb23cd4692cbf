package armstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestModeBanking checks that SVC and FIQ keep independent R13 slots,
// and USR is independent from both.
func TestModeBanking(t *testing.T) {
	var f File
	f.Mode = ModeSVC
	f.A32Set(13, V7, 0x1000)

	f.Mode = ModeFIQ
	f.A32Set(13, V7, 0x2000)

	f.Mode = ModeSVC
	require.Equal(t, uint32(0x1000), f.A32Get(13, V7))

	f.Mode = ModeUSR
	require.Equal(t, uint32(0), f.A32Get(13, V7))
}

// TestBankingLawHoldsAcrossAliasedModes checks that reading via a
// different mode returns the written value iff the two modes alias
// the same physical slot.
func TestBankingLawHoldsAcrossAliasedModes(t *testing.T) {
	for _, tc := range []struct {
		writeMode, readMode uint8
		n                   uint8
		alias               bool
	}{
		{ModeUSR, ModeSYS, 13, true},
		{ModeUSR, ModeSVC, 13, false},
		{ModeSVC, ModeABT, 13, false},
		{ModeUSR, ModeUSR, 3, true},
		{ModeFIQ, ModeUSR, 3, true}, // r0-r7 are never banked, so r3 is aliased even from FIQ
	} {
		var f File
		f.Mode = tc.writeMode
		f.A32Set(tc.n, V7, 0xABCD)
		f.Mode = tc.readMode
		got := f.A32Get(tc.n, V7)
		if tc.alias {
			require.Equal(t, uint32(0xABCD), got)
		} else {
			require.NotEqual(t, uint32(0xABCD), got)
		}
	}
}

func TestExclusiveMonitor(t *testing.T) {
	var m ExclusiveMonitor
	require.False(t, m.IsOpen(0x100, 4))
	m.Reserve(0x100, 4)
	require.True(t, m.IsOpen(0x100, 4))
	require.False(t, m.IsOpen(0x200, 4))
	m.Clear()
	require.False(t, m.IsOpen(0x100, 4))
}

func TestCPSRRoundTrip(t *testing.T) {
	cfg := Config{Version: V7, Features: FeatureTHUMB | FeatureSECURITY, ThumbLevel: ThumbTwo, SupportedISA: ISAArm32 | ISAThumb}
	var p PSTATE
	p.Mode = ModeSVC
	p.N, p.Z, p.C, p.V = true, false, true, false
	p.GE = 0xa

	raw := EncodeCPSR(p, cfg)
	got, err := DecodeCPSR(PSTATE{}, raw, 0xffffffff, cfg)
	require.NoError(t, err)
	require.Equal(t, p.N, got.N)
	require.Equal(t, p.C, got.C)
	require.Equal(t, p.GE, got.GE)
	require.Equal(t, p.Mode, got.Mode)
}

func TestCPSRRejectsM4FlipOnNon26BitCore(t *testing.T) {
	cfg := Config{Version: V7} // no FeatureARM26
	prev := PSTATE{Mode: ModeSVC}
	raw := uint32(0x00) // 26-bit USR mode: M4 bit (0x10) clear
	_, err := DecodeCPSR(prev, raw, 0xff, cfg)
	require.Error(t, err)
}

// TestDecodeCPSRPreservesJTWhenByteNotSelected checks that an MSR
// CPSR_f-style write (field mask covering only byte3, the flags byte)
// leaves JT alone: byte0 (bitT) isn't selected, so a Thumb core must
// stay in Thumb rather than being read back out of raw's incidental
// bitT=0 and forced to JTArm.
func TestDecodeCPSRPreservesJTWhenByteNotSelected(t *testing.T) {
	cfg := Config{Version: V7, Features: FeatureTHUMB, ThumbLevel: ThumbTwo, SupportedISA: ISAArm32 | ISAThumb}
	prev := PSTATE{Mode: ModeSVC, JT: JTThumb}
	raw := uint32(0x80000000) // N set; bitT(5) and bitJ(24) both read as 0
	mask := uint32(0xff000000) // CPSR_f: byte3 only

	got, err := DecodeCPSR(prev, raw, mask, cfg)
	require.NoError(t, err)
	require.True(t, got.N)
	require.Equal(t, JTThumb, got.JT)
}
