package arm32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRorRoundTrip checks the round-trip law: ror-by-N then
// ror-by-(32-N) is the identity for N in [1,31].
func TestRorRoundTrip(t *testing.T) {
	for n := uint8(1); n < 32; n++ {
		v := uint32(0x12345678)
		once, _ := ApplyShift(ROR, v, n, false, false)
		twice, _ := ApplyShift(ROR, once, 32-n, false, false)
		require.Equal(t, v, twice, "n=%d", n)
	}
}

func TestLSLByZeroPreservesCarry(t *testing.T) {
	_, carry := ApplyShift(LSL, 0xf0000000, 0, false, true)
	require.True(t, carry)
}

func TestLSLBy32ClearsResultAndTakesCarryFromBit0(t *testing.T) {
	result, carry := ApplyShift(LSL, 0x1, 32, false, false)
	require.Equal(t, uint32(0), result)
	require.True(t, carry)
}

func TestLSLByMoreThan32ClearsCarry(t *testing.T) {
	_, carry := ApplyShift(LSL, 0xffffffff, 40, false, true)
	require.False(t, carry)
}

func TestRRXEncoding(t *testing.T) {
	result, carry := ApplyShift(ROR, 0x00000002, 0, false, true)
	require.Equal(t, uint32(0x80000001), result)
	require.False(t, carry)
}
