// conditions.go - native condition parser and evaluator, for the
// common case that doesn't need the Lua scripting bridge.
//
// Formats:
//
//	a==$FF         - register A, op ==, value 0xFF
//	[$2000]==$42   - memory at 0x2000, op ==, value 0x42
//	hitcount>10    - hit count, op >, value 10

package debug

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroarcade/space-invaders-8080/cpu8080"
)

// ParseCondition parses text into a Condition.
func ParseCondition(text string) (*Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty condition")
	}

	var op ConditionOp
	var opStr string
	var opIdx int
	for _, candidate := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if idx := strings.Index(text, candidate); idx >= 0 {
			opStr, opIdx = candidate, idx
			break
		}
	}
	if opStr == "" {
		return nil, fmt.Errorf("no operator found (use ==, !=, <, >, <=, >=)")
	}
	switch opStr {
	case "==":
		op = CondOpEqual
	case "!=":
		op = CondOpNotEqual
	case "<":
		op = CondOpLess
	case ">":
		op = CondOpGreater
	case "<=":
		op = CondOpLessEqual
	case ">=":
		op = CondOpGreaterEqual
	}

	lhs := strings.TrimSpace(text[:opIdx])
	rhs := strings.TrimSpace(text[opIdx+len(opStr):])

	value, ok := parseNumber(rhs)
	if !ok {
		return nil, fmt.Errorf("invalid value: %s", rhs)
	}

	if strings.HasPrefix(lhs, "[") && strings.HasSuffix(lhs, "]") {
		addr, ok := parseNumber(lhs[1 : len(lhs)-1])
		if !ok {
			return nil, fmt.Errorf("invalid memory address: %s", lhs)
		}
		return &Condition{Source: CondSourceMemory, MemAddr: uint16(addr), Op: op, Value: value}, nil
	}
	if strings.EqualFold(lhs, "hitcount") {
		return &Condition{Source: CondSourceHitCount, Op: op, Value: value}, nil
	}
	return &Condition{Source: CondSourceRegister, RegName: strings.ToUpper(lhs), Op: op, Value: value}, nil
}

func parseNumber(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, err == nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	default:
		v, err := strconv.ParseUint(s, 10, 64)
		return v, err == nil
	}
}

// Evaluate reports whether cond holds for the current CPU state.
// hitCount is only consulted for CondSourceHitCount conditions.
func Evaluate(cond *Condition, adapter *cpu8080.Adapter, hitCount uint64) bool {
	if cond == nil {
		return true
	}
	var actual uint64
	switch cond.Source {
	case CondSourceRegister:
		val, ok := adapter.GetRegister(cond.RegName)
		if !ok {
			return false
		}
		actual = val
	case CondSourceMemory:
		data := adapter.ReadMemory(cond.MemAddr, 1)
		if len(data) == 0 {
			return false
		}
		actual = uint64(data[0])
	case CondSourceHitCount:
		actual = hitCount
	}
	return compareValues(actual, cond.Op, cond.Value)
}

func compareValues(actual uint64, op ConditionOp, expected uint64) bool {
	switch op {
	case CondOpEqual:
		return actual == expected
	case CondOpNotEqual:
		return actual != expected
	case CondOpLess:
		return actual < expected
	case CondOpGreater:
		return actual > expected
	case CondOpLessEqual:
		return actual <= expected
	case CondOpGreaterEqual:
		return actual >= expected
	}
	return false
}

// FormatCondition returns a human-readable string for cond.
func FormatCondition(cond *Condition) string {
	if cond == nil {
		return ""
	}
	var lhs string
	switch cond.Source {
	case CondSourceRegister:
		lhs = cond.RegName
	case CondSourceMemory:
		lhs = fmt.Sprintf("[$%X]", cond.MemAddr)
	case CondSourceHitCount:
		lhs = "hitcount"
	}
	var opStr string
	switch cond.Op {
	case CondOpEqual:
		opStr = "=="
	case CondOpNotEqual:
		opStr = "!="
	case CondOpLess:
		opStr = "<"
	case CondOpGreater:
		opStr = ">"
	case CondOpLessEqual:
		opStr = "<="
	case CondOpGreaterEqual:
		opStr = ">="
	}
	return fmt.Sprintf("%s%s$%X", lhs, opStr, cond.Value)
}
