package debug

import (
	"testing"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

func TestScriptEvalConditionReadsRegisters(t *testing.T) {
	cpu := cpu8080.New([]byte{0x3E, 0x2A}) // MVI A,$2A
	cpu.Step()
	adapter := cpu8080.NewAdapter(cpu)

	s := NewScript()
	defer s.Close()

	ok, err := s.EvalCondition("A == 42", adapter)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !ok {
		t.Fatalf("expected A==42 to hold")
	}
}

func TestScriptEvalConditionCombinatorial(t *testing.T) {
	cpu := cpu8080.New([]byte{0x3E, 0x01, 0x06, 0x02}) // MVI A,1 ; MVI B,2
	cpu.Step()
	cpu.Step()
	adapter := cpu8080.NewAdapter(cpu)

	s := NewScript()
	defer s.Close()

	ok, err := s.EvalCondition("A == 1 and B == 2", adapter)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !ok {
		t.Fatalf("expected combined condition to hold")
	}
}

func TestScriptEvalConditionNonBooleanIsFalse(t *testing.T) {
	cpu := cpu8080.New(nil)
	adapter := cpu8080.NewAdapter(cpu)

	s := NewScript()
	defer s.Close()

	ok, err := s.EvalCondition("A + 1", adapter)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if ok {
		t.Fatalf("expected non-boolean result to report false, not true")
	}
}

func TestScriptPeekReadsMemory(t *testing.T) {
	cpu := cpu8080.New(nil)
	adapter := cpu8080.NewAdapter(cpu)
	adapter.WriteMemory(0x2200, []byte{0x77})

	s := NewScript()
	defer s.Close()

	ok, err := s.EvalCondition("peek(0x2200) == 0x77", adapter)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !ok {
		t.Fatalf("expected peek() to read the written byte")
	}
}

func TestScriptRunCheatPokesMemoryAndSetsRegister(t *testing.T) {
	cpu := cpu8080.New(nil)
	adapter := cpu8080.NewAdapter(cpu)

	s := NewScript()
	defer s.Close()

	if err := s.RunCheat(`poke(0x2300, 99); setreg("A", 5)`, adapter); err != nil {
		t.Fatalf("cheat: %v", err)
	}

	if got := adapter.ReadMemory(0x2300, 1)[0]; got != 99 {
		t.Fatalf("expected poke to take effect, got %d", got)
	}
	val, _ := adapter.GetRegister("A")
	if val != 5 {
		t.Fatalf("expected setreg to take effect, got %d", val)
	}
}
