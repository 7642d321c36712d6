// monitor.go - breakpoints, watchpoints and freeze/resume for a single
// running CPU. A scoped-down sibling of the teacher's multi-CPU
// MachineMonitor: one cabinet, one CPU, no coprocessor bus.

package debug

import (
	"fmt"
	"sync"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

// Monitor is the debugger state attached to one running cabinet.
type Monitor struct {
	mu sync.Mutex

	adapter *cpu8080.Adapter
	running bool

	breakpoints map[uint16]*ConditionalBreakpoint
	watchpoints map[uint16]*Watchpoint

	script *Script

	events chan BreakpointEvent
}

// NewMonitor attaches a Monitor to adapter. The CPU starts running.
func NewMonitor(adapter *cpu8080.Adapter) *Monitor {
	return &Monitor{
		adapter:     adapter,
		running:     true,
		breakpoints: make(map[uint16]*ConditionalBreakpoint),
		watchpoints: make(map[uint16]*Watchpoint),
		script:      NewScript(),
	}
}

// Close releases the Lua scripting state.
func (m *Monitor) Close() { m.script.Close() }

// SetBreakpointChannel registers a channel that receives every
// breakpoint/watchpoint hit; nil disables delivery.
func (m *Monitor) SetBreakpointChannel(ch chan BreakpointEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = ch
}

// IsRunning reports whether the CPU is currently allowed to step.
func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Freeze stops execution, preserving all CPU state as-is.
func (m *Monitor) Freeze() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
}

// Resume restarts execution from the current PC.
func (m *Monitor) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = true
}

// SetBreakpoint arms an unconditional breakpoint at addr.
func (m *Monitor) SetBreakpoint(addr uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakpoints[addr] = &ConditionalBreakpoint{Address: addr}
}

// SetConditionalBreakpoint arms a breakpoint that only fires when cond
// holds, evaluated via the native comparator.
func (m *Monitor) SetConditionalBreakpoint(addr uint16, cond *Condition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakpoints[addr] = &ConditionalBreakpoint{Address: addr, Cond: cond}
}

// SetScriptedBreakpoint arms a breakpoint evaluated by the Lua bridge,
// for conditions the native parser can't express (multi-register
// boolean combinations, arithmetic).
func (m *Monitor) SetScriptedBreakpoint(addr uint16, luaExpr string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakpoints[addr] = &ConditionalBreakpoint{Address: addr, LuaExpr: luaExpr}
}

// ClearBreakpoint disarms the breakpoint at addr, if any.
func (m *Monitor) ClearBreakpoint(addr uint16) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.breakpoints[addr]; !ok {
		return false
	}
	delete(m.breakpoints, addr)
	return true
}

// ClearAllBreakpoints disarms every breakpoint.
func (m *Monitor) ClearAllBreakpoints() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakpoints = make(map[uint16]*ConditionalBreakpoint)
}

// HasBreakpoint reports whether addr currently has an armed breakpoint.
func (m *Monitor) HasBreakpoint(addr uint16) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.breakpoints[addr]
	return ok
}

// ListBreakpoints returns every armed breakpoint address.
func (m *Monitor) ListBreakpoints() []uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint16, 0, len(m.breakpoints))
	for addr := range m.breakpoints {
		out = append(out, addr)
	}
	return out
}

// SetWatchpoint arms a write watchpoint on addr.
func (m *Monitor) SetWatchpoint(addr uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchpoints[addr] = &Watchpoint{Address: addr, LastValue: m.adapter.ReadMemory(addr, 1)[0]}
}

// ClearWatchpoint disarms the watchpoint at addr, if any.
func (m *Monitor) ClearWatchpoint(addr uint16) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.watchpoints[addr]; !ok {
		return false
	}
	delete(m.watchpoints, addr)
	return true
}

// ClearAllWatchpoints disarms every watchpoint.
func (m *Monitor) ClearAllWatchpoints() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchpoints = make(map[uint16]*Watchpoint)
}

// ListWatchpoints returns every armed watchpoint address.
func (m *Monitor) ListWatchpoints() []uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint16, 0, len(m.watchpoints))
	for addr := range m.watchpoints {
		out = append(out, addr)
	}
	return out
}

// Step executes one instruction if running, then checks whether it
// landed on an armed breakpoint or touched a watched address. On a
// hit it freezes and publishes a BreakpointEvent. Returns the cycle
// count from the underlying CPU step, or 0 if frozen.
func (m *Monitor) Step() int {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return 0
	}
	m.mu.Unlock()

	cycles := m.adapter.Step()
	pc := uint16(m.adapter.GetPC())

	for addr, wp := range m.watchpoints {
		cur := m.adapter.ReadMemory(addr, 1)[0]
		if cur != wp.LastValue {
			m.Freeze()
			m.fire(BreakpointEvent{
				IsWatch: true, WatchAddr: addr,
				WatchOldValue: wp.LastValue, WatchNewValue: cur,
			})
			wp.LastValue = cur
		}
	}

	m.mu.Lock()
	bp, armed := m.breakpoints[pc]
	m.mu.Unlock()
	if !armed {
		return cycles
	}

	hit := true
	switch {
	case bp.LuaExpr != "":
		ok, err := m.script.EvalCondition(bp.LuaExpr, m.adapter)
		hit = err == nil && ok
	case bp.Cond != nil:
		hit = Evaluate(bp.Cond, m.adapter, bp.HitCount)
	}
	if hit {
		bp.HitCount++
		m.Freeze()
		m.fire(BreakpointEvent{Address: pc})
	}
	return cycles
}

func (m *Monitor) fire(ev BreakpointEvent) {
	m.mu.Lock()
	ch := m.events
	m.mu.Unlock()
	if ch != nil {
		select {
		case ch <- ev:
		default:
		}
	}
}

// RegisterDump renders every register as a fixed-width hex line, the
// text the clipboard command copies.
func (m *Monitor) RegisterDump() string {
	var out string
	for _, r := range m.adapter.GetRegisters() {
		out += fmt.Sprintf("%-5s = $%0*X\n", r.Name, r.BitWidth/4, r.Value)
	}
	return out
}
