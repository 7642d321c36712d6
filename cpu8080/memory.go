// memory.go - 64KiB ROM/RAM memory model for the Intel 8080 core

package cpu8080

const (
	// RomSize is the size of the ROM partition and the maximum program image length.
	RomSize = 0x2000
	// MemSize is the full 16-bit address space.
	MemSize = 0x10000
)

// Memory is the 8080's 64KiB address space, split into a read-only ROM
// partition ([0x0000, 0x2000)) and a freely mutable RAM partition
// ([0x2000, 0x10000)). Writes below 0x2000 are silently discarded —
// programs that address ROM through a generic store still "succeed"
// from their own point of view.
type Memory struct {
	rom [RomSize]byte
	ram [MemSize - RomSize]byte
}

// NewMemory builds a Memory with ROM filled from program (truncated or
// zero-padded to RomSize) and RAM zeroed.
func NewMemory(program []byte) Memory {
	var m Memory
	n := copy(m.rom[:], program)
	_ = n
	return m
}

// Read returns the byte at addr across the full 16-bit address space.
func (m *Memory) Read(addr uint16) byte {
	if addr < RomSize {
		return m.rom[addr]
	}
	return m.ram[addr-RomSize]
}

// Write stores byte at addr if addr falls in the RAM partition;
// writes into ROM are no-ops by design (see spec).
func (m *Memory) Write(addr uint16, value byte) {
	if addr < RomSize {
		return
	}
	m.ram[addr-RomSize] = value
}

// ResetRAM zeroes the RAM partition, leaving ROM untouched.
func (m *Memory) ResetRAM() {
	for i := range m.ram {
		m.ram[i] = 0
	}
}

// ROM returns the ROM partition's contents, mainly for debug/snapshot use.
func (m *Memory) ROM() []byte {
	return m.rom[:]
}

// RAM returns the RAM partition's contents, mainly for debug/snapshot use.
func (m *Memory) RAM() []byte {
	return m.ram[:]
}

// LoadRAM overwrites the RAM partition from data, used by snapshot restore.
func (m *Memory) LoadRAM(data []byte) {
	copy(m.ram[:], data)
}
