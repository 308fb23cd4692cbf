package arm32

import (
	"testing"

	"github.com/BinaryMelodies/all-the-arm/armstate"
	"github.com/stretchr/testify/require"
)

// TestALAlwaysNVNever checks that AL always holds and NV never does.
func TestALAlwaysNVNever(t *testing.T) {
	for n := 0; n <= 0xf; n++ {
		p := armstate.PSTATE{N: n&1 != 0, Z: n&2 != 0, C: n&4 != 0, V: n&8 != 0}
		require.True(t, ConditionMet(14, p), "AL must hold for state %d", n)
		require.False(t, ConditionMet(15, p), "NV must never hold for state %d", n)
	}
}

func TestConditionName(t *testing.T) {
	require.Equal(t, "eq", ConditionName(0))
	require.Equal(t, "ge", ConditionName(10))
}

func TestConditionMetMatchesARMSemantics(t *testing.T) {
	p := armstate.PSTATE{Z: true, C: true}
	require.True(t, ConditionMet(0, p))  // EQ
	require.False(t, ConditionMet(1, p)) // NE
	require.True(t, ConditionMet(2, p))  // CS/HS
	require.False(t, ConditionMet(8, p)) // HI: C && !Z, but Z is true here
	p2 := armstate.PSTATE{Z: false, C: true}
	require.True(t, ConditionMet(8, p2))
}
