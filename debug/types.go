// types.go - shared monitor/breakpoint types (the debug package's
// equivalent of the teacher's DebuggableCPU surface, narrowed to one
// concrete CPU instead of a family of them).

package debug

// ConditionOp is a breakpoint condition's comparison operator.
type ConditionOp int

const (
	CondOpEqual ConditionOp = iota
	CondOpNotEqual
	CondOpLess
	CondOpGreater
	CondOpLessEqual
	CondOpGreaterEqual
)

// ConditionSource names what a breakpoint condition compares.
type ConditionSource int

const (
	CondSourceRegister ConditionSource = iota
	CondSourceMemory
	CondSourceHitCount
)

// Condition is a single comparison: source OP value.
type Condition struct {
	Source  ConditionSource
	RegName string
	MemAddr uint16
	Op      ConditionOp
	Value   uint64
}

// ConditionalBreakpoint pairs an address with an optional condition
// and tracks how many times it has fired.
type ConditionalBreakpoint struct {
	Address  uint16
	Cond     *Condition // nil means unconditional
	LuaExpr  string     // non-empty means evaluate via the Lua scripting bridge instead of Cond
	HitCount uint64
}

// Watchpoint is a write watchpoint on one memory address.
type Watchpoint struct {
	Address   uint16
	LastValue uint8
}

// BreakpointEvent is published when execution stops at a breakpoint
// or watchpoint.
type BreakpointEvent struct {
	Address       uint16
	IsWatch       bool
	WatchAddr     uint16
	WatchOldValue uint8
	WatchNewValue uint8
}
