// cpu.go - Intel 8080 register file, lifecycle and instruction dispatch
//
// Instruction semantics are ported from the original Rust cpu.rs this
// spec was distilled from; cycle counts and flag handling follow
// spec.md §4.3 exactly. See DESIGN.md for the points where this
// implementation deliberately departs from the original's quirks
// (ADC/SBB carry arithmetic, and DAA's post-adjustment flag source).

package cpu8080

// InterruptStatus is the two-valued interrupt-enable latch.
type InterruptStatus int

const (
	InterruptEnabled InterruptStatus = iota
	InterruptDisabled
)

// CPU holds the full programmer-visible state of the 8080: the seven
// 8-bit general registers, PC/SP, the flags byte, the interrupt latch
// and the pending host event, plus the Memory it executes against.
type CPU struct {
	Memory Memory

	interruptStatus InterruptStatus
	event           *Event

	flags uint8
	pc    uint16
	sp    uint16
	a     uint8
	b     uint8
	c     uint8
	d     uint8
	e     uint8
	h     uint8
	l     uint8
}

// New constructs a CPU with Memory initialized from program; all
// registers zero, interrupts enabled, no pending event.
func New(program []byte) *CPU {
	return &CPU{
		Memory:          NewMemory(program),
		interruptStatus: InterruptEnabled,
	}
}

// Reset returns RAM, registers, flags, PC, SP, the interrupt latch and
// the event slot to construction values. ROM is untouched.
func (c *CPU) Reset() {
	c.Memory.ResetRAM()
	c.interruptStatus = InterruptEnabled
	c.event = nil
	c.flags = 0
	c.pc = 0
	c.sp = 0
	c.a = 0
	c.b = 0
	c.c = 0
	c.d = 0
	c.e = 0
	c.h = 0
	c.l = 0
}

// Interrupt performs the equivalent of RST n if the interrupt latch is
// Enabled; otherwise it is a no-op. It does not itself touch the latch.
func (c *CPU) Interrupt(n uint8) {
	if c.interruptStatus == InterruptEnabled {
		c.rst(n)
	}
}

// InterruptsEnabled reports the current state of the interrupt latch.
func (c *CPU) InterruptsEnabled() bool {
	return c.interruptStatus == InterruptEnabled
}

// PortIn loads a host-supplied byte into A, completing a prior
// EventPortRead. Must be called before the guest next reads A.
func (c *CPU) PortIn(value uint8) {
	c.a = value
}

// PC returns the current program counter, mainly for debug/disasm use.
func (c *CPU) PC() uint16 { return c.pc }

// SetPC forces the program counter, used by the debug monitor.
func (c *CPU) SetPC(addr uint16) { c.pc = addr }

// SP returns the current stack pointer.
func (c *CPU) SP() uint16 { return c.sp }

// A, B, C, D, E, H, L return the 8-bit general registers.
func (c *CPU) A() uint8 { return c.a }
func (c *CPU) B() uint8 { return c.b }
func (c *CPU) C() uint8 { return c.c }
func (c *CPU) D() uint8 { return c.d }
func (c *CPU) E() uint8 { return c.e }
func (c *CPU) H() uint8 { return c.h }
func (c *CPU) L() uint8 { return c.l }

// Flags returns the raw FLAGS byte.
func (c *CPU) Flags() uint8 { return c.flags }

// SetA, SetB, ... set individual registers; used by the debug monitor.
func (c *CPU) SetA(v uint8)     { c.a = v }
func (c *CPU) SetB(v uint8)     { c.b = v }
func (c *CPU) SetC(v uint8)     { c.c = v }
func (c *CPU) SetD(v uint8)     { c.d = v }
func (c *CPU) SetE(v uint8)     { c.e = v }
func (c *CPU) SetH(v uint8)     { c.h = v }
func (c *CPU) SetL(v uint8)     { c.l = v }
func (c *CPU) SetSP(v uint16)   { c.sp = v }
func (c *CPU) SetFlags(v uint8) { c.flags = v }

// BC, DE, HL concatenate the register pairs high-byte-first.
func (c *CPU) BC() uint16 { return concat16(c.b, c.c) }
func (c *CPU) DE() uint16 { return concat16(c.d, c.e) }
func (c *CPU) HL() uint16 { return concat16(c.h, c.l) }

func concat16(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// m returns the address the M pseudo-register denotes: mem[(H,L)].
func (c *CPU) m() uint16 { return c.HL() }

// mVal reads the memory byte addressed by (H,L).
func (c *CPU) mVal() uint8 { return c.Memory.Read(c.m()) }

// setMVal writes the memory byte addressed by (H,L).
func (c *CPU) setMVal(v uint8) { c.Memory.Write(c.m(), v) }

func (c *CPU) bcVal() uint8       { return c.Memory.Read(c.BC()) }
func (c *CPU) setBCVal(v uint8)   { c.Memory.Write(c.BC(), v) }
func (c *CPU) deVal() uint8       { return c.Memory.Read(c.DE()) }
func (c *CPU) setDEVal(v uint8)   { c.Memory.Write(c.DE(), v) }

// readPC fetches the byte at PC and advances PC by one.
func (c *CPU) readPC() uint8 {
	v := c.Memory.Read(c.pc)
	c.pc++
	return v
}

// readPC16 fetches a little-endian 16-bit immediate and advances PC by two.
func (c *CPU) readPC16() uint16 {
	lo := c.Memory.Read(c.pc)
	hi := c.Memory.Read(c.pc + 1)
	c.pc += 2
	return concat16(hi, lo)
}

func (c *CPU) stackPush(v uint8) {
	c.sp--
	c.Memory.Write(c.sp, v)
}

func (c *CPU) stackPush16(v uint16) {
	c.stackPush(uint8(v >> 8))
	c.stackPush(uint8(v))
}

func (c *CPU) stackPop() uint8 {
	v := c.Memory.Read(c.sp)
	c.sp++
	return v
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop())
	hi := uint16(c.stackPop())
	return hi<<8 | lo
}

func (c *CPU) rst(n uint8) int {
	return c.call(uint16(n) << 3)
}

func (c *CPU) call(addr uint16) int {
	c.stackPush16(c.pc)
	c.pc = addr
	return 5
}

func (c *CPU) callIf(flag uint8) int {
	addr := c.readPC16()
	if c.flagSet(flag) {
		return c.call(addr)
	}
	return 3
}

func (c *CPU) callIfNot(flag uint8) int {
	addr := c.readPC16()
	if !c.flagSet(flag) {
		return c.call(addr)
	}
	return 3
}

func (c *CPU) ret() int {
	c.pc = c.stackPop16()
	return 3
}

func (c *CPU) retIf(flag uint8) int {
	if c.flagSet(flag) {
		return c.ret()
	}
	return 1
}

func (c *CPU) retIfNot(flag uint8) int {
	if !c.flagSet(flag) {
		return c.ret()
	}
	return 1
}

func (c *CPU) jmpIf(flag uint8) int {
	addr := c.readPC16()
	if c.flagSet(flag) {
		c.pc = addr
	}
	return 3
}

func (c *CPU) jmpIfNot(flag uint8) int {
	addr := c.readPC16()
	if !c.flagSet(flag) {
		c.pc = addr
	}
	return 3
}

// inr increments val, updating Z/S/P and preserving carry.
func (c *CPU) inr(val uint8) uint8 {
	result := val + 1
	c.setFlags(result, c.flag(CarryFlag))
	return result
}

// dcr decrements val, updating Z/S/P and preserving carry.
func (c *CPU) dcr(val uint8) uint8 {
	result := val - 1
	c.setFlags(result, c.flag(CarryFlag))
	return result
}

func (c *CPU) addA(right uint8) int {
	result := c.a + right
	carry := uint8(0)
	if uint16(c.a)+uint16(right) > 0xFF {
		carry = 1
	}
	c.setFlags(result, carry)
	c.a = result
	return 1
}

// addAWithCarry computes A + right + carryIn as a single 9-bit
// operation, the corrected ADC/ACI semantics (see DESIGN.md).
func (c *CPU) addAWithCarry(right uint8, carryIn uint8) int {
	sum := uint16(c.a) + uint16(right) + uint16(carryIn)
	result := uint8(sum)
	carry := uint8(0)
	if sum > 0xFF {
		carry = 1
	}
	c.setFlags(result, carry)
	c.a = result
	return 1
}

func (c *CPU) subA(val uint8) int {
	result := c.a - val
	underflow := uint8(0)
	if uint16(val) > uint16(c.a) {
		underflow = 1
	}
	c.setFlags(result, underflow)
	c.a = result
	return 1
}

// subAWithCarry computes A - val - carryIn as a single 9-bit
// operation, the corrected SBB/SBI semantics (see DESIGN.md).
func (c *CPU) subAWithCarry(val uint8, carryIn uint8) int {
	diff := int16(c.a) - int16(val) - int16(carryIn)
	result := uint8(diff)
	underflow := uint8(0)
	if diff < 0 {
		underflow = 1
	}
	c.setFlags(result, underflow)
	c.a = result
	return 1
}

func (c *CPU) andA(val uint8) int {
	c.a &= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) xorA(val uint8) int {
	c.a ^= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) orA(val uint8) int {
	c.a |= val
	c.setFlags(c.a, 0)
	return 1
}

func (c *CPU) cmpA(val uint8) int {
	result := c.a - val
	underflow := uint8(0)
	if uint16(val) > uint16(c.a) {
		underflow = 1
	}
	c.setFlags(result, underflow)
	return 1
}

func inx(hi, lo *uint8) int {
	result := *lo + 1
	carry := uint8(0)
	if result < *lo {
		carry = 1
	}
	*lo = result
	*hi += carry
	return 1
}

func dcx(hi, lo *uint8) int {
	result := *lo - 1
	carry := uint8(0)
	if result > *lo {
		carry = 1
	}
	*lo = result
	*hi -= carry
	return 1
}

func (c *CPU) dad(hi, lo uint8) int {
	val := concat16(hi, lo)
	hl := c.HL()
	sum := uint32(hl) + uint32(val)
	c.h = uint8(sum >> 8)
	c.l = uint8(sum)
	c.setFlag(CarryFlag, sum > 0xFFFF)
	return 3
}
