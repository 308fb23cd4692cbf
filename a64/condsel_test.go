package a64_test

import "github.com/BinaryMelodies/all-the-arm/armstate"

func zeroFlags() armstate.PSTATE {
	return armstate.PSTATE{}
}
