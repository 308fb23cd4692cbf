package a64_test

import (
	"github.com/BinaryMelodies/all-the-arm/a64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeBitmaskImmediate", func() {
	It("expands a simple low byte mask", func() {
		v, ok := a64.DecodeBitmaskImmediate(0, 0, 7, false)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint64(0xff)))
	})

	It("rejects the all-ones encoding", func() {
		_, ok := a64.DecodeBitmaskImmediate(1, 0, 63, true)
		Expect(ok).To(BeFalse())
	})

	It("replicates a single-bit 8-bit element across a 64-bit register", func() {
		v, ok := a64.DecodeBitmaskImmediate(0, 0, 48, true)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint64(0x0101010101010101)))
	})

	It("rejects an N=0 encoding whose masked run length is not of the form ones-1", func() {
		_, ok := a64.DecodeBitmaskImmediate(0, 0, 28, true)
		Expect(ok).To(BeFalse())
	})

	It("accepts a legal N=0 encoding of the same 32-bit element size", func() {
		v, ok := a64.DecodeBitmaskImmediate(0, 0, 15, true)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint64(0x0000ffff0000ffff)))
	})
})

var _ = Describe("Conditional select family", func() {
	It("passes through the true operand when the condition holds", func() {
		result := a64.ExecuteConditionalSelect(a64.CSINC, 14 /* AL */, zeroFlags(), 5, 9, false)
		Expect(result).To(Equal(uint64(5)))
	})

	It("increments the false operand when the condition fails", func() {
		result := a64.ExecuteConditionalSelect(a64.CSINC, 0 /* EQ */, zeroFlags(), 5, 9, false)
		Expect(result).To(Equal(uint64(10)))
	})
})
