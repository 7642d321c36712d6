// opcodes.go - static opcode metadata for the disassembler
//
// This table is consulted only by Adapter.Disassemble (used by
// cmd/spaceinvaders' disasm subcommand); Step() does not use it.

package cpu8080

// OpInfo describes one opcode's mnemonic and the number of immediate
// operand bytes that follow it in the instruction stream.
type OpInfo struct {
	Mnemonic string
	Operands int // bytes following the opcode byte itself
}

// Opcodes maps every opcode byte to its disassembly metadata. Unused
// byte values that are NOP aliases still carry the "NOP" mnemonic so a
// listing reads the same way the silicon behaves.
var Opcodes = [256]OpInfo{
	0x00: {"NOP", 0}, 0x01: {"LXI B,d16", 2}, 0x02: {"STAX B", 0}, 0x03: {"INX B", 0},
	0x04: {"INR B", 0}, 0x05: {"DCR B", 0}, 0x06: {"MVI B,d8", 1}, 0x07: {"RLC", 0},
	0x08: {"NOP", 0}, 0x09: {"DAD B", 0}, 0x0A: {"LDAX B", 0}, 0x0B: {"DCX B", 0},
	0x0C: {"INR C", 0}, 0x0D: {"DCR C", 0}, 0x0E: {"MVI C,d8", 1}, 0x0F: {"RRC", 0},

	0x10: {"NOP", 0}, 0x11: {"LXI D,d16", 2}, 0x12: {"STAX D", 0}, 0x13: {"INX D", 0},
	0x14: {"INR D", 0}, 0x15: {"DCR D", 0}, 0x16: {"MVI D,d8", 1}, 0x17: {"RAL", 0},
	0x18: {"NOP", 0}, 0x19: {"DAD D", 0}, 0x1A: {"LDAX D", 0}, 0x1B: {"DCX D", 0},
	0x1C: {"INR E", 0}, 0x1D: {"DCR E", 0}, 0x1E: {"MVI E,d8", 1}, 0x1F: {"RAR", 0},

	0x20: {"NOP", 0}, 0x21: {"LXI H,d16", 2}, 0x22: {"SHLD a16", 2}, 0x23: {"INX H", 0},
	0x24: {"INR H", 0}, 0x25: {"DCR H", 0}, 0x26: {"MVI H,d8", 1}, 0x27: {"DAA", 0},
	0x28: {"NOP", 0}, 0x29: {"DAD H", 0}, 0x2A: {"LHLD a16", 2}, 0x2B: {"DCX H", 0},
	0x2C: {"INR L", 0}, 0x2D: {"DCR L", 0}, 0x2E: {"MVI L,d8", 1}, 0x2F: {"CMA", 0},

	0x30: {"NOP", 0}, 0x31: {"LXI SP,d16", 2}, 0x32: {"STA a16", 2}, 0x33: {"INX SP", 0},
	0x34: {"INR M", 0}, 0x35: {"DCR M", 0}, 0x36: {"MVI M,d8", 1}, 0x37: {"STC", 0},
	0x38: {"NOP", 0}, 0x39: {"DAD SP", 0}, 0x3A: {"LDA a16", 2}, 0x3B: {"DCX SP", 0},
	0x3C: {"INR A", 0}, 0x3D: {"DCR A", 0}, 0x3E: {"MVI A,d8", 1}, 0x3F: {"CMC", 0},

	0x40: {"MOV B,B", 0}, 0x41: {"MOV B,C", 0}, 0x42: {"MOV B,D", 0}, 0x43: {"MOV B,E", 0},
	0x44: {"MOV B,H", 0}, 0x45: {"MOV B,L", 0}, 0x46: {"MOV B,M", 0}, 0x47: {"MOV B,A", 0},
	0x48: {"MOV C,B", 0}, 0x49: {"MOV C,C", 0}, 0x4A: {"MOV C,D", 0}, 0x4B: {"MOV C,E", 0},
	0x4C: {"MOV C,H", 0}, 0x4D: {"MOV C,L", 0}, 0x4E: {"MOV C,M", 0}, 0x4F: {"MOV C,A", 0},

	0x50: {"MOV D,B", 0}, 0x51: {"MOV D,C", 0}, 0x52: {"MOV D,D", 0}, 0x53: {"MOV D,E", 0},
	0x54: {"MOV D,H", 0}, 0x55: {"MOV D,L", 0}, 0x56: {"MOV D,M", 0}, 0x57: {"MOV D,A", 0},
	0x58: {"MOV E,B", 0}, 0x59: {"MOV E,C", 0}, 0x5A: {"MOV E,D", 0}, 0x5B: {"MOV E,E", 0},
	0x5C: {"MOV E,H", 0}, 0x5D: {"MOV E,L", 0}, 0x5E: {"MOV E,M", 0}, 0x5F: {"MOV E,A", 0},

	0x60: {"MOV H,B", 0}, 0x61: {"MOV H,C", 0}, 0x62: {"MOV H,D", 0}, 0x63: {"MOV H,E", 0},
	0x64: {"MOV H,H", 0}, 0x65: {"MOV H,L", 0}, 0x66: {"MOV H,M", 0}, 0x67: {"MOV H,A", 0},
	0x68: {"MOV L,B", 0}, 0x69: {"MOV L,C", 0}, 0x6A: {"MOV L,D", 0}, 0x6B: {"MOV L,E", 0},
	0x6C: {"MOV L,H", 0}, 0x6D: {"MOV L,L", 0}, 0x6E: {"MOV L,M", 0}, 0x6F: {"MOV L,A", 0},

	0x70: {"MOV M,B", 0}, 0x71: {"MOV M,C", 0}, 0x72: {"MOV M,D", 0}, 0x73: {"MOV M,E", 0},
	0x74: {"MOV M,H", 0}, 0x75: {"MOV M,L", 0}, 0x76: {"HLT", 0}, 0x77: {"MOV M,A", 0},
	0x78: {"MOV A,B", 0}, 0x79: {"MOV A,C", 0}, 0x7A: {"MOV A,D", 0}, 0x7B: {"MOV A,E", 0},
	0x7C: {"MOV A,H", 0}, 0x7D: {"MOV A,L", 0}, 0x7E: {"MOV A,M", 0}, 0x7F: {"MOV A,A", 0},

	0x80: {"ADD B", 0}, 0x81: {"ADD C", 0}, 0x82: {"ADD D", 0}, 0x83: {"ADD E", 0},
	0x84: {"ADD H", 0}, 0x85: {"ADD L", 0}, 0x86: {"ADD M", 0}, 0x87: {"ADD A", 0},
	0x88: {"ADC B", 0}, 0x89: {"ADC C", 0}, 0x8A: {"ADC D", 0}, 0x8B: {"ADC E", 0},
	0x8C: {"ADC H", 0}, 0x8D: {"ADC L", 0}, 0x8E: {"ADC M", 0}, 0x8F: {"ADC A", 0},

	0x90: {"SUB B", 0}, 0x91: {"SUB C", 0}, 0x92: {"SUB D", 0}, 0x93: {"SUB E", 0},
	0x94: {"SUB H", 0}, 0x95: {"SUB L", 0}, 0x96: {"SUB M", 0}, 0x97: {"SUB A", 0},
	0x98: {"SBB B", 0}, 0x99: {"SBB C", 0}, 0x9A: {"SBB D", 0}, 0x9B: {"SBB E", 0},
	0x9C: {"SBB H", 0}, 0x9D: {"SBB L", 0}, 0x9E: {"SBB M", 0}, 0x9F: {"SBB A", 0},

	0xA0: {"ANA B", 0}, 0xA1: {"ANA C", 0}, 0xA2: {"ANA D", 0}, 0xA3: {"ANA E", 0},
	0xA4: {"ANA H", 0}, 0xA5: {"ANA L", 0}, 0xA6: {"ANA M", 0}, 0xA7: {"ANA A", 0},
	0xA8: {"XRA B", 0}, 0xA9: {"XRA C", 0}, 0xAA: {"XRA D", 0}, 0xAB: {"XRA E", 0},
	0xAC: {"XRA H", 0}, 0xAD: {"XRA L", 0}, 0xAE: {"XRA M", 0}, 0xAF: {"XRA A", 0},

	0xB0: {"ORA B", 0}, 0xB1: {"ORA C", 0}, 0xB2: {"ORA D", 0}, 0xB3: {"ORA E", 0},
	0xB4: {"ORA H", 0}, 0xB5: {"ORA L", 0}, 0xB6: {"ORA M", 0}, 0xB7: {"ORA A", 0},
	0xB8: {"CMP B", 0}, 0xB9: {"CMP C", 0}, 0xBA: {"CMP D", 0}, 0xBB: {"CMP E", 0},
	0xBC: {"CMP H", 0}, 0xBD: {"CMP L", 0}, 0xBE: {"CMP M", 0}, 0xBF: {"CMP A", 0},

	0xC0: {"RNZ", 0}, 0xC1: {"POP B", 0}, 0xC2: {"JNZ a16", 2}, 0xC3: {"JMP a16", 2},
	0xC4: {"CNZ a16", 2}, 0xC5: {"PUSH B", 0}, 0xC6: {"ADI d8", 1}, 0xC7: {"RST 0", 0},
	0xC8: {"RZ", 0}, 0xC9: {"RET", 0}, 0xCA: {"JZ a16", 2}, 0xCB: {"JMP a16", 2},
	0xCC: {"CZ a16", 2}, 0xCD: {"CALL a16", 2}, 0xCE: {"ACI d8", 1}, 0xCF: {"RST 1", 0},

	0xD0: {"RNC", 0}, 0xD1: {"POP D", 0}, 0xD2: {"JNC a16", 2}, 0xD3: {"OUT d8", 1},
	0xD4: {"CNC a16", 2}, 0xD5: {"PUSH D", 0}, 0xD6: {"SUI d8", 1}, 0xD7: {"RST 2", 0},
	0xD8: {"RC", 0}, 0xD9: {"RET", 0}, 0xDA: {"JC a16", 2}, 0xDB: {"IN d8", 1},
	0xDC: {"CC a16", 2}, 0xDD: {"CALL a16", 2}, 0xDE: {"SBI d8", 1}, 0xDF: {"RST 3", 0},

	0xE0: {"RPO", 0}, 0xE1: {"POP H", 0}, 0xE2: {"JPO a16", 2}, 0xE3: {"XTHL", 0},
	0xE4: {"CPO a16", 2}, 0xE5: {"PUSH H", 0}, 0xE6: {"ANI d8", 1}, 0xE7: {"RST 4", 0},
	0xE8: {"RPE", 0}, 0xE9: {"PCHL", 0}, 0xEA: {"JPE a16", 2}, 0xEB: {"XCHG", 0},
	0xEC: {"CPE a16", 2}, 0xED: {"CALL a16", 2}, 0xEE: {"XRI d8", 1}, 0xEF: {"RST 5", 0},

	0xF0: {"RP", 0}, 0xF1: {"POP PSW", 0}, 0xF2: {"JP a16", 2}, 0xF3: {"DI", 0},
	0xF4: {"CP a16", 2}, 0xF5: {"PUSH PSW", 0}, 0xF6: {"ORI d8", 1}, 0xF7: {"RST 6", 0},
	0xF8: {"RM", 0}, 0xF9: {"SPHL", 0}, 0xFA: {"JM a16", 2}, 0xFB: {"EI", 0},
	0xFC: {"CM a16", 2}, 0xFD: {"CALL a16", 2}, 0xFE: {"CPI d8", 1}, 0xFF: {"RST 7", 0},
}
