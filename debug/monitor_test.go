package debug

import (
	"testing"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

func newTestMonitor(program []byte) (*Monitor, *cpu8080.CPU) {
	cpu := cpu8080.New(program)
	adapter := cpu8080.NewAdapter(cpu)
	return NewMonitor(adapter), cpu
}

func TestMonitorStepsWhileRunning(t *testing.T) {
	m, cpu := newTestMonitor([]byte{0x00, 0x00, 0x00}) // NOP NOP NOP
	defer m.Close()

	for i := 0; i < 3; i++ {
		if cycles := m.Step(); cycles == 0 {
			t.Fatalf("expected step %d to run", i)
		}
	}
	if cpu.PC() != 3 {
		t.Fatalf("expected PC=3, got %d", cpu.PC())
	}
}

func TestMonitorUnconditionalBreakpointFreezes(t *testing.T) {
	m, cpu := newTestMonitor([]byte{0x00, 0x00, 0x00, 0x00})
	defer m.Close()

	m.SetBreakpoint(1)
	m.Step() // executes opcode at 0, lands PC=1 -> hit
	if m.IsRunning() {
		t.Fatalf("expected monitor to freeze at breakpoint")
	}
	if cpu.PC() != 1 {
		t.Fatalf("expected PC=1 at freeze, got %d", cpu.PC())
	}

	before := cpu.PC()
	m.Step() // frozen, should not advance
	if cpu.PC() != before {
		t.Fatalf("expected frozen CPU not to advance")
	}
}

func TestMonitorConditionalBreakpointOnlyFiresWhenTrue(t *testing.T) {
	m, _ := newTestMonitor([]byte{0x3E, 0x05, 0x00, 0x00}) // MVI A,5 ; NOP ; NOP
	defer m.Close()

	cond, err := ParseCondition("a==$05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m.SetConditionalBreakpoint(2, cond)

	m.Step() // MVI A,5 -> PC=2, A=5, breakpoint condition true
	if m.IsRunning() {
		t.Fatalf("expected breakpoint to fire once A==5")
	}
}

func TestMonitorResumeClearsFreeze(t *testing.T) {
	m, _ := newTestMonitor([]byte{0x00, 0x00})
	defer m.Close()
	m.Freeze()
	if m.IsRunning() {
		t.Fatalf("expected frozen")
	}
	m.Resume()
	if !m.IsRunning() {
		t.Fatalf("expected running after resume")
	}
}

func TestMonitorWatchpointFiresOnWrite(t *testing.T) {
	m, _ := newTestMonitor([]byte{0x3E, 0x99, 0x32, 0x00, 0x21}) // MVI A,$99 ; STA $2100
	defer m.Close()

	ch := make(chan BreakpointEvent, 4)
	m.SetBreakpointChannel(ch)
	m.SetWatchpoint(0x2100)

	m.Step() // MVI A,$99
	m.Step() // STA $2100

	select {
	case ev := <-ch:
		if !ev.IsWatch || ev.WatchAddr != 0x2100 || ev.WatchNewValue != 0x99 {
			t.Fatalf("unexpected watch event: %+v", ev)
		}
	default:
		t.Fatalf("expected a watchpoint event")
	}
}

func TestMonitorBreakpointBookkeeping(t *testing.T) {
	m, _ := newTestMonitor(nil)
	defer m.Close()

	m.SetBreakpoint(0x100)
	if !m.HasBreakpoint(0x100) {
		t.Fatalf("expected breakpoint armed")
	}
	if len(m.ListBreakpoints()) != 1 {
		t.Fatalf("expected one breakpoint listed")
	}
	if !m.ClearBreakpoint(0x100) {
		t.Fatalf("expected clear to report success")
	}
	if m.HasBreakpoint(0x100) {
		t.Fatalf("expected breakpoint cleared")
	}
}

func TestMonitorRegisterDumpListsEveryRegister(t *testing.T) {
	m, _ := newTestMonitor([]byte{0x3E, 0x07})
	defer m.Close()
	m.Step()

	dump := m.RegisterDump()
	for _, name := range []string{"A", "B", "C", "D", "E", "H", "L", "PC", "SP", "FLAGS"} {
		if !containsLine(dump, name) {
			t.Fatalf("expected register dump to mention %s:\n%s", name, dump)
		}
	}
}

func containsLine(dump, name string) bool {
	for i := 0; i+len(name) <= len(dump); i++ {
		if dump[i:i+len(name)] == name {
			return true
		}
	}
	return false
}
