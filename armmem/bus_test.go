package armmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks that any write followed by a read at the same
// address, size, and endianness round trips, for every endian policy.
func TestRoundTrip(t *testing.T) {
	for _, e := range []Endian{Little, Big8, Big32} {
		bus := NewBus(NewPageBackend())
		require.NoError(t, bus.WriteU8(0x1000, 0x5a, e, false))
		b, err := bus.ReadU8(0x1000, e, false)
		require.NoError(t, err)
		require.Equal(t, uint8(0x5a), b)

		require.NoError(t, bus.WriteU32(0x2000, 0xdeadbeef, e, false, AlignNative))
		w, err := bus.ReadU32(0x2000, e, false, AlignNative)
		require.NoError(t, err)
		require.Equal(t, uint32(0xdeadbeef), w, "endian %s", e)

		require.NoError(t, bus.WriteU64(0x3000, 0x1122334455667788, e, false, AlignNative))
		d, err := bus.ReadU64(0x3000, e, false, AlignNative)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1122334455667788), d)
	}
}

// TestBE32WordIsLittleEndian checks that a natural aligned 32-bit
// BE-32 access yields the same bytes as plain LE.
func TestBE32WordIsLittleEndian(t *testing.T) {
	le := NewBus(NewPageBackend())
	be32 := NewBus(NewPageBackend())
	require.NoError(t, le.WriteU32(0x100, 0x11223344, Little, false, AlignNative))
	require.NoError(t, be32.WriteU32(0x100, 0x11223344, Big32, false, AlignNative))

	for i := uint64(0); i < 4; i++ {
		a, _ := le.ReadU8(0x100+i, Little, false)
		b, _ := be32.ReadU8(0x100+i, Little, false)
		require.Equal(t, a, b, "byte %d", i)
	}
}

// TestBE32ByteRoundTrip checks that writing a halfword under BE-32
// lands at the true XOR-3 physical addresses (architectural address 3
// maps to physical 0, architectural address 4 maps to physical 7) with
// the most significant byte first, and reads back correctly through
// Big32 at the original architectural address.
func TestBE32ByteRoundTrip(t *testing.T) {
	bus := NewBus(NewPageBackend())
	require.NoError(t, bus.WriteU16(3, 0x1234, Big32, false, AlignNative))

	require.Equal(t, uint64(0), be32PhysicalAddress(3))
	require.Equal(t, uint64(7), be32PhysicalAddress(4))

	hi, err := bus.ReadU8(0, Little, false)
	require.NoError(t, err)
	require.Equal(t, uint8(0x12), hi, "MSB lands at the physical address architectural 3 maps to")

	lo, err := bus.ReadU8(7, Little, false)
	require.NoError(t, err)
	require.Equal(t, uint8(0x34), lo, "LSB lands at the physical address architectural 4 maps to")

	v, err := bus.ReadU16(3, Big32, false, AlignNative)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
}

// TestRotatedUnalignedLoad checks that an ARMv6-era unaligned LDR with
// SCTLR.A=0, SCTLR.U=0 rounds down and rotates.
func TestRotatedUnalignedLoad(t *testing.T) {
	bus := NewBus(NewPageBackend())
	require.NoError(t, bus.WriteU32(0x1000, 0xddccbbaa, Little, false, AlignNative))

	v, err := bus.ReadU32(0x1002, Little, false, AlignRotatedLoad)
	require.NoError(t, err)
	require.Equal(t, uint32(0xbbaaddcc), v)
}

func TestAlignStrictRejectsMisaligned(t *testing.T) {
	bus := NewBus(NewPageBackend())
	_, err := bus.ReadU32(0x1001, Little, false, AlignStrict)
	require.ErrorIs(t, err, ErrUnaligned)
}

func TestChangedRangeTracksWrites(t *testing.T) {
	bus := NewBus(NewPageBackend())
	require.NoError(t, bus.WriteU8(0x100, 1, Little, false))
	require.NoError(t, bus.WriteU32(0x200, 1, Little, false, AlignNative))
	lo, hi, dirty := bus.ChangedRange()
	require.True(t, dirty)
	require.Equal(t, uint64(0x100), lo)
	require.Equal(t, uint64(0x203), hi)
}
