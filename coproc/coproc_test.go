package coproc

import "testing"

type fakeProcessor struct {
	regs [16]uint64
	mem  map[uint64]uint32
}

func (f *fakeProcessor) GetRegister(n uint8) uint64    { return f.regs[n] }
func (f *fakeProcessor) SetRegister(n uint8, v uint64) { f.regs[n] = v }
func (f *fakeProcessor) ReadWord(addr uint64) (uint32, error) {
	return f.mem[addr], nil
}
func (f *fakeProcessor) WriteWord(addr uint64, v uint32) error {
	f.mem[addr] = v
	return nil
}

// counterCoprocessor's single register holds a running count, and CDP
// increments it.
type counterCoprocessor struct {
	Unimplemented
	register uint32
}

func (c *counterCoprocessor) CDP(Processor, uint32) error {
	c.register++
	return nil
}

func (c *counterCoprocessor) MCRMRC(p Processor, _ uint32, rd uint8, load bool) error {
	if load {
		p.SetRegister(rd, uint64(c.register))
	} else {
		c.register = uint32(p.GetRegister(rd))
	}
	return nil
}

func TestTableDispatch(t *testing.T) {
	var table Table
	c := &counterCoprocessor{Unimplemented: Unimplemented{Num: 15}}
	table.Register(c)

	if table.Get(15) != c {
		t.Fatal("expected registered coprocessor at slot 15")
	}
	if err := table.Get(15).CDP(nil, 0); err != nil {
		t.Fatal(err)
	}
	if c.register != 1 {
		t.Fatalf("expected register == 1, got %d", c.register)
	}

	p := &fakeProcessor{mem: map[uint64]uint32{}}
	if err := table.Get(15).MCRMRC(p, 0, 0, true); err != nil {
		t.Fatal(err)
	}
	if p.regs[0] != 1 {
		t.Fatalf("expected r0 == 1, got %d", p.regs[0])
	}
}

func TestUnregisteredSlotUndefined(t *testing.T) {
	var table Table
	if table.Get(3) != nil {
		t.Fatal("expected nil for unregistered slot")
	}
}
