package a64_test

import (
	"github.com/BinaryMelodies/all-the-arm/a64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bitfield move family", func() {
	It("UBFM implements LSR #4 on a 32-bit value", func() {
		result := a64.ExecuteUBFM(0xf0, 4, 31, false)
		Expect(result).To(Equal(uint64(0x0f)))
	})

	It("SBFM implements ASR #28, sign-extending from a negative top nibble", func() {
		result := a64.ExecuteSBFM(0xf0000000, 28, 31, false)
		Expect(result).To(Equal(uint64(0xffffffff)))
	})

	It("BFM inserts without disturbing surrounding bits", func() {
		result := a64.ExecuteBFM(0xffffffff, 0x1, 0, 0, false)
		Expect(result).To(Equal(uint64(0xfffffffe | 0x1)))
	})
})
