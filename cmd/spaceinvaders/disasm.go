// disasm.go - "disasm" subcommand: static disassembly listing

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

func disassemble(path, startHex string, count int) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	start, err := parseHexAddr(startHex)
	if err != nil {
		return err
	}

	cpu := cpu8080.New(rom)
	adapter := cpu8080.NewAdapter(cpu)
	for _, line := range adapter.Disassemble(start, count) {
		marker := "  "
		if line.IsPC {
			marker = "->"
		}
		fmt.Printf("%s %04X  %-8s  %s\n", marker, line.Address, line.HexBytes, line.Mnemonic)
	}
	return nil
}

func parseHexAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}
