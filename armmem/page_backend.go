package armmem

// PageBackend is a 3-level, 4K-page backend implementing Backend. It
// indexes address bits 0-47 (16-bit top index, 20-bit mid index,
// 12-bit page offset); bits 48-63 are ignored, so addresses that differ
// only there share the same byte. Privilege is not enforced here; every
// address is accessible.
type PageBackend struct {
	top [][][]byte
}

// NewPageBackend returns an empty, little-endian-agnostic byte store.
func NewPageBackend() *PageBackend {
	return &PageBackend{top: make([][][]byte, 1<<16)}
}

func pageIndices(addr uint64) (top, mid, low uint64) {
	return (addr >> 32) & 0xffff, (addr >> 12) & 0xfffff, addr & 0xfff
}

func (m *PageBackend) page(addr uint64, create bool) []byte {
	topIdx, midIdx, _ := pageIndices(addr)
	midTable := m.top[topIdx]
	if midTable == nil {
		if !create {
			return nil
		}
		midTable = make([][]byte, 1<<20)
		m.top[topIdx] = midTable
	}
	page := midTable[midIdx]
	if page == nil {
		if !create {
			return nil
		}
		page = make([]byte, 4096)
		midTable[midIdx] = page
	}
	return page
}

// SetRegion maps data into memory starting at base, allocating pages
// on demand.
func (m *PageBackend) SetRegion(base uint64, data []byte) {
	addr := base
	for i := 0; i < len(data); i++ {
		page := m.page(addr&^0xfff, true)
		page[addr&0xfff] = data[i]
		addr++
	}
}

// ReadBytes implements Backend. It never fails: an unmapped page reads
// as zero, matching a freshly allocated teacher page.
func (m *PageBackend) ReadBytes(addr uint64, buf []byte, _ bool) bool {
	for i := range buf {
		page := m.page((addr+uint64(i))&^0xfff, false)
		if page == nil {
			buf[i] = 0
			continue
		}
		buf[i] = page[(addr+uint64(i))&0xfff]
	}
	return true
}

// WriteBytes implements Backend, allocating pages on demand.
func (m *PageBackend) WriteBytes(addr uint64, buf []byte, _ bool) bool {
	for i, v := range buf {
		page := m.page((addr+uint64(i))&^0xfff, true)
		page[(addr+uint64(i))&0xfff] = v
	}
	return true
}
