// script.go - Lua-scripted breakpoint conditions and cheats.
//
// The native parser in conditions.go only covers single comparisons;
// anything that needs boolean combinators or arithmetic on more than
// one register goes through a small Lua sandbox instead, with the CPU
// state exposed as globals the script reads.

package debug

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

// Script wraps a Lua state pre-seeded with the CPU register globals.
// Not safe for concurrent use; callers own one per monitor session.
type Script struct {
	state *lua.LState
}

// NewScript opens a fresh Lua state. Call Close when done.
func NewScript() *Script {
	return &Script{state: lua.NewState()}
}

// Close releases the underlying Lua state.
func (s *Script) Close() { s.state.Close() }

// EvalCondition runs expr as a Lua boolean expression with A, B, C, D,
// E, H, L, PC, SP, FLAGS bound to the adapter's current register
// values, plus a peek(addr) function for single-byte memory reads.
// Returns false (not an error) if the script doesn't evaluate to a
// boolean, so a broken cheat never silently halts the emulator.
func (s *Script) EvalCondition(expr string, adapter *cpu8080.Adapter) (bool, error) {
	s.bindRegisters(adapter)
	s.bindPeek(adapter)

	if err := s.state.DoString("return " + expr); err != nil {
		return false, err
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)
	if b, ok := ret.(lua.LBool); ok {
		return bool(b), nil
	}
	return false, nil
}

// RunCheat executes a Lua statement body (not an expression) with the
// same register globals bound, and applies any setreg()/poke()
// calls the script makes back onto adapter.
func (s *Script) RunCheat(body string, adapter *cpu8080.Adapter) error {
	s.bindRegisters(adapter)
	s.bindPeek(adapter)
	s.bindPoke(adapter)
	s.bindSetRegister(adapter)
	return s.state.DoString(body)
}

func (s *Script) bindRegisters(adapter *cpu8080.Adapter) {
	for _, name := range []string{"A", "B", "C", "D", "E", "H", "L", "PC", "SP", "FLAGS"} {
		if v, ok := adapter.GetRegister(name); ok {
			s.state.SetGlobal(name, lua.LNumber(v))
		}
	}
}

func (s *Script) bindPeek(adapter *cpu8080.Adapter) {
	s.state.SetGlobal("peek", s.state.NewFunction(func(L *lua.LState) int {
		addr := uint16(L.CheckInt(1))
		data := adapter.ReadMemory(addr, 1)
		L.Push(lua.LNumber(data[0]))
		return 1
	}))
}

func (s *Script) bindPoke(adapter *cpu8080.Adapter) {
	s.state.SetGlobal("poke", s.state.NewFunction(func(L *lua.LState) int {
		addr := uint16(L.CheckInt(1))
		val := uint8(L.CheckInt(2))
		adapter.WriteMemory(addr, []byte{val})
		return 0
	}))
}

func (s *Script) bindSetRegister(adapter *cpu8080.Adapter) {
	s.state.SetGlobal("setreg", s.state.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		val := uint64(L.CheckInt(2))
		adapter.SetRegister(name, val)
		return 0
	}))
}
