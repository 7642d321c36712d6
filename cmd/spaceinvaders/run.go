// run.go - "run" subcommand: frame loop, interrupt cadence, snapshot flags

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
	"github.com/retroarcade/space-invaders-8080/audio"
	"github.com/retroarcade/space-invaders-8080/cpu8080"
	"github.com/retroarcade/space-invaders-8080/debug"
	runtimeio "github.com/retroarcade/space-invaders-8080/runtime"
	"github.com/retroarcade/space-invaders-8080/video"
)

// vramBase/vramSize bound the cabinet's video RAM window inside the
// 8080's 16-bit address space: 256x224 bits, one bit per pixel.
const (
	vramBase = 0x2400
	vramSize = 7168

	clockHz       = 2_000_000
	framesPerSec  = 60
	cyclesPerHalf = clockHz / framesPerSec / 2
)

// runOptions collects the "run" subcommand's flags. There is no
// runtime headless switch: the ASCII/no-op backends are selected at
// compile time by the "headless" build tag (audio/headless.go,
// video/ascii_output.go), not by a flag here.
type runOptions struct {
	ROMPath     string
	Scale       int
	BreakAtHex  string
	SnapshotIn  string
	SnapshotOut string
}

func runROM(opts runOptions) error {
	rom, err := os.ReadFile(opts.ROMPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	if abs, err := filepath.Abs(opts.ROMPath); err == nil {
		if err := runtimeio.SendIPCOpen(abs); err == nil {
			fmt.Println("handed off to the already-running instance")
			return nil
		}
	}

	cpu := cpu8080.New(rom)
	if opts.SnapshotIn != "" {
		snap, err := cpu8080.LoadFromFile(opts.SnapshotIn)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		cpu8080.Restore(cpu, snap)
	}

	cabinet := arcadeio.NewCabinet()
	mixer := audio.NewMixer(audio.SampleRate())

	player, err := audio.NewPlayer()
	if err != nil {
		return fmt.Errorf("opening audio: %w", err)
	}
	player.SetupMixer(mixer)
	player.Start()
	defer player.Close()

	out := video.NewOutput(&cabinet.Inputs)
	defer out.Close()

	adapter := cpu8080.NewAdapter(cpu)
	monitor := debug.NewMonitor(adapter)
	defer monitor.Close()
	if opts.BreakAtHex != "" {
		addr, err := parseHexAddr(opts.BreakAtHex)
		if err != nil {
			return err
		}
		monitor.SetBreakpoint(addr)
	}

	ipc, err := runtimeio.NewIPCServer(func(path string) error {
		fmt.Fprintf(os.Stderr, "a second instance asked to open %s; hot-swap isn't supported, ignoring\n", path)
		return nil
	})
	if err == nil {
		ipc.Start()
		defer ipc.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	frame := func() bool {
		select {
		case <-quit:
			return false
		default:
		}

		runHalfFrame(cpu, monitor, cabinet, mixer, cyclesPerHalf)
		cpu.Interrupt(1) // RST 1: mid-screen interrupt
		runHalfFrame(cpu, monitor, cabinet, mixer, cyclesPerHalf)
		cpu.Interrupt(2) // RST 2: vblank interrupt

		out.UpdateVRAM(adapter.ReadMemory(vramBase, vramSize))
		return true
	}

	title := fmt.Sprintf("Space Invaders - %s", filepath.Base(opts.ROMPath))
	runErr := out.Run(title, opts.Scale, frame)

	if opts.SnapshotOut != "" {
		snap := cpu8080.TakeSnapshot(cpu)
		if err := cpu8080.SaveToFile(snap, opts.SnapshotOut); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return runErr
}

// runHalfFrame burns cycles T-states (four per machine cycle that a
// step reports), servicing cabinet I/O and
// feeding cabinet sound events into the mixer as they occur. It stops
// early, leaving the remaining budget unspent, if the monitor freezes
// on a breakpoint.
func runHalfFrame(cpu *cpu8080.CPU, monitor *debug.Monitor, cabinet *arcadeio.Cabinet, mixer *audio.Mixer, cycles int) {
	spent := 0
	for spent < cycles {
		if !monitor.IsRunning() {
			return
		}
		spent += monitor.Step() * 4 // machine cycles -> approximate T-states

		for cabinet.Service(cpu) {
		}
		if ev, ok := cabinet.TakeSoundEvent(); ok {
			mixer.Trigger(ev)
		}
	}
}
