// debug.go - DebuggableCPU adapter, so the debug monitor can drive this
// core the same way it would drive any other CPU package.

package cpu8080

import "fmt"

// RegisterInfo describes a single register for display in the monitor.
type RegisterInfo struct {
	Name     string
	BitWidth int
	Value    uint64
	Group    string
}

// DisassembledLine is one decoded instruction for a monitor listing.
type DisassembledLine struct {
	Address  uint16
	HexBytes string
	Mnemonic string
	Size     int
	IsPC     bool
}

// Adapter exposes a CPU's register file and memory to the debug
// package without that package importing cpu8080 internals directly.
type Adapter struct {
	cpu *CPU
}

// NewAdapter wraps cpu for monitor/disassembler use.
func NewAdapter(cpu *CPU) *Adapter { return &Adapter{cpu: cpu} }

func (a *Adapter) CPUName() string   { return "Intel 8080" }
func (a *Adapter) AddressWidth() int { return 16 }

func (a *Adapter) GetRegisters() []RegisterInfo {
	c := a.cpu
	return []RegisterInfo{
		{Name: "A", BitWidth: 8, Value: uint64(c.a), Group: "general"},
		{Name: "B", BitWidth: 8, Value: uint64(c.b), Group: "general"},
		{Name: "C", BitWidth: 8, Value: uint64(c.c), Group: "general"},
		{Name: "D", BitWidth: 8, Value: uint64(c.d), Group: "general"},
		{Name: "E", BitWidth: 8, Value: uint64(c.e), Group: "general"},
		{Name: "H", BitWidth: 8, Value: uint64(c.h), Group: "general"},
		{Name: "L", BitWidth: 8, Value: uint64(c.l), Group: "general"},
		{Name: "PC", BitWidth: 16, Value: uint64(c.pc), Group: "general"},
		{Name: "SP", BitWidth: 16, Value: uint64(c.sp), Group: "general"},
		{Name: "FLAGS", BitWidth: 8, Value: uint64(c.flags), Group: "flags"},
	}
}

func (a *Adapter) GetRegister(name string) (uint64, bool) {
	c := a.cpu
	switch name {
	case "A":
		return uint64(c.a), true
	case "B":
		return uint64(c.b), true
	case "C":
		return uint64(c.c), true
	case "D":
		return uint64(c.d), true
	case "E":
		return uint64(c.e), true
	case "H":
		return uint64(c.h), true
	case "L":
		return uint64(c.l), true
	case "PC":
		return uint64(c.pc), true
	case "SP":
		return uint64(c.sp), true
	case "FLAGS":
		return uint64(c.flags), true
	default:
		return 0, false
	}
}

func (a *Adapter) SetRegister(name string, value uint64) bool {
	c := a.cpu
	switch name {
	case "A":
		c.a = uint8(value)
	case "B":
		c.b = uint8(value)
	case "C":
		c.c = uint8(value)
	case "D":
		c.d = uint8(value)
	case "E":
		c.e = uint8(value)
	case "H":
		c.h = uint8(value)
	case "L":
		c.l = uint8(value)
	case "PC":
		c.pc = uint16(value)
	case "SP":
		c.sp = uint16(value)
	case "FLAGS":
		c.flags = uint8(value)
	default:
		return false
	}
	return true
}

func (a *Adapter) GetPC() uint64     { return uint64(a.cpu.pc) }
func (a *Adapter) SetPC(addr uint64) { a.cpu.pc = uint16(addr) }

// Step executes one instruction and returns the cycle count.
func (a *Adapter) Step() int { return a.cpu.Step() }

// Disassemble decodes count instructions starting at addr, using the
// static Opcodes table; it does not mutate CPU state.
func (a *Adapter) Disassemble(addr uint16, count int) []DisassembledLine {
	lines := make([]DisassembledLine, 0, count)
	pc := addr
	for i := 0; i < count; i++ {
		op := a.cpu.Memory.Read(pc)
		info := Opcodes[op]
		size := 1 + info.Operands
		hex := fmt.Sprintf("%02X", op)
		for o := 0; o < info.Operands; o++ {
			hex += fmt.Sprintf(" %02X", a.cpu.Memory.Read(pc+uint16(o)+1))
		}
		lines = append(lines, DisassembledLine{
			Address:  pc,
			HexBytes: hex,
			Mnemonic: info.Mnemonic,
			Size:     size,
			IsPC:     pc == a.cpu.pc,
		})
		pc += uint16(size)
	}
	return lines
}

// ReadMemory returns a copy of size bytes starting at addr.
func (a *Adapter) ReadMemory(addr uint16, size int) []byte {
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		out[i] = a.cpu.Memory.Read(addr + uint16(i))
	}
	return out
}

// WriteMemory writes data starting at addr (ROM writes are discarded,
// matching guest-visible semantics).
func (a *Adapter) WriteMemory(addr uint16, data []byte) {
	for i, v := range data {
		a.cpu.Memory.Write(addr+uint16(i), v)
	}
}
