package cpu8080

import "testing"

func newTestCPU(program []byte) *CPU {
	c := New(program)
	return c
}

func requireEqualU8(t *testing.T, name string, got, want uint8) {
	t.Helper()
	if got != want {
		t.Errorf("%s = 0x%02X, want 0x%02X", name, got, want)
	}
}

func requireEqualU16(t *testing.T, name string, got, want uint16) {
	t.Helper()
	if got != want {
		t.Errorf("%s = 0x%04X, want 0x%04X", name, got, want)
	}
}

func TestLoadImmediateAndAdd(t *testing.T) {
	c := newTestCPU([]byte{
		0x3E, 0x05, // MVI A,5
		0x06, 0x03, // MVI B,3
		0x80, // ADD B
	})
	for i := 0; i < 3; i++ {
		c.Step()
	}
	requireEqualU8(t, "A", c.A(), 8)
	if c.flagSet(ZeroFlag) {
		t.Error("zero flag should be clear")
	}
}

func TestAddSetsZeroAndCarry(t *testing.T) {
	c := newTestCPU([]byte{
		0x3E, 0xFF, // MVI A,0xFF
		0x06, 0x01, // MVI B,1
		0x80, // ADD B
	})
	for i := 0; i < 3; i++ {
		c.Step()
	}
	requireEqualU8(t, "A", c.A(), 0)
	if !c.flagSet(ZeroFlag) {
		t.Error("zero flag should be set")
	}
	if !c.flagSet(CarryFlag) {
		t.Error("carry flag should be set")
	}
}

func TestCallAndReturn(t *testing.T) {
	c := newTestCPU([]byte{
		0x31, 0x00, 0x21, // LXI SP,0x2100
		0xCD, 0x07, 0x00, // CALL 0x0007
		0x76,       // HLT (landing pad if CALL fails)
		0x3E, 0x42, // sub: MVI A,0x42
		0xC9, // RET
	})
	for i := 0; i < 4; i++ {
		c.Step()
	}
	requireEqualU8(t, "A", c.A(), 0x42)
	requireEqualU16(t, "PC", c.PC(), 6)
}

func TestRotateLeftCircular(t *testing.T) {
	c := newTestCPU([]byte{
		0x3E, 0x81, // MVI A,0x81
		0x07, // RLC
	})
	c.Step()
	c.Step()
	requireEqualU8(t, "A", c.A(), 0x03)
	if !c.flagSet(CarryFlag) {
		t.Error("carry flag should capture the bit rotated out")
	}
}

func TestConditionalJumpNotTaken(t *testing.T) {
	c := newTestCPU([]byte{
		0x3E, 0x01, // MVI A,1
		0xB7,       // ORA A (clears carry, sets zero iff A==0)
		0xDA, 0x00, 0x00, // JC 0x0000 (not taken: carry clear)
		0x3E, 0x99, // MVI A,0x99
	})
	for i := 0; i < 4; i++ {
		c.Step()
	}
	requireEqualU8(t, "A", c.A(), 0x99)
}

func TestPushPopPSWRoundTrip(t *testing.T) {
	c := newTestCPU([]byte{
		0x31, 0x00, 0x21, // LXI SP,0x2100
		0x3E, 0x5A, // MVI A,0x5A
		0xF5, // PUSH PSW
		0x3E, 0x00, // MVI A,0
		0xF1, // POP PSW
	})
	for i := 0; i < 5; i++ {
		c.Step()
	}
	requireEqualU8(t, "A", c.A(), 0x5A)
}

func TestInterruptDelivery(t *testing.T) {
	c := newTestCPU([]byte{
		0x31, 0x00, 0x21, // LXI SP,0x2100
		0x00, // NOP
	})
	c.Step()
	c.Step()
	c.Interrupt(1) // RST 1 -> 0x0008
	requireEqualU16(t, "PC", c.PC(), 0x0008)
}

func TestInterruptSuppressedWhenDisabled(t *testing.T) {
	c := newTestCPU([]byte{
		0x31, 0x00, 0x21, // LXI SP,0x2100
		0xF3, // DI
	})
	c.Step()
	c.Step()
	pcBefore := c.PC()
	c.Interrupt(1)
	requireEqualU16(t, "PC", c.PC(), pcBefore)
}

func TestINXCarriesIntoHighByte(t *testing.T) {
	c := newTestCPU([]byte{
		0x01, 0xFF, 0x00, // LXI B,0x00FF
		0x03, // INX B (0x00FF -> 0x0100, carry into B)
	})
	c.Step()
	c.Step()
	requireEqualU8(t, "B", c.B(), 0x01)
	requireEqualU8(t, "C", c.C(), 0x00)
}

func TestINRDoesNotTouchCarry(t *testing.T) {
	c := newTestCPU([]byte{
		0x37,       // STC
		0x3E, 0xFF, // MVI A,0xFF
		0x3C, // INR A
	})
	c.Step()
	c.Step()
	c.Step()
	requireEqualU8(t, "A", c.A(), 0)
	if !c.flagSet(CarryFlag) {
		t.Error("INR must not clear a carry set by a prior instruction")
	}
	if !c.flagSet(ZeroFlag) {
		t.Error("zero flag should be set")
	}
}

func TestROMWritesAreDiscarded(t *testing.T) {
	c := newTestCPU([]byte{0x00})
	c.Memory.Write(0x0000, 0xFF)
	requireEqualU8(t, "rom[0]", c.Memory.Read(0x0000), 0x00)
}
