// main.go - cobra root command for the cabinet binary

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spaceinvaders",
		Short: "Intel 8080 emulator built to host the Space Invaders arcade ROM",
	}

	var scale int
	var breakAddr string
	var snapshotIn string
	var snapshotOut string

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Run a ROM image against the cabinet",
		Long: "Run a ROM image against the cabinet.\n\n" +
			"The windowed (ebiten/oto) and headless (ASCII/no-op) backends are\n" +
			"chosen at build time by the \"headless\" build tag, not by a flag:\n" +
			"  go build ./cmd/spaceinvaders                 # windowed\n" +
			"  go build -tags headless ./cmd/spaceinvaders   # headless",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runROM(runOptions{
				ROMPath:     args[0],
				Scale:       scale,
				BreakAtHex:  breakAddr,
				SnapshotIn:  snapshotIn,
				SnapshotOut: snapshotOut,
			})
		},
	}
	runCmd.Flags().IntVar(&scale, "scale", 2, "window scale factor")
	runCmd.Flags().StringVar(&breakAddr, "break", "", "pause at this address on startup (hex, e.g. 0x0008)")
	runCmd.Flags().StringVar(&snapshotIn, "load-state", "", "restore a snapshot before running")
	runCmd.Flags().StringVar(&snapshotOut, "save-state", "", "write a snapshot to this path on exit")

	var disasmCount int
	var disasmStart string
	disasmCmd := &cobra.Command{
		Use:   "disasm [rom]",
		Short: "Print a static disassembly listing of a ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return disassemble(args[0], disasmStart, disasmCount)
		},
	}
	disasmCmd.Flags().StringVar(&disasmStart, "start", "0x0000", "start address (hex)")
	disasmCmd.Flags().IntVar(&disasmCount, "count", 64, "number of instructions to decode")

	rootCmd.AddCommand(runCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
