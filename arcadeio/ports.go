// ports.go - the Taito/Midway Space Invaders cabinet I/O map, bound
// on top of a cpu8080.CPU's port-read/port-write events.

package arcadeio

import "github.com/retroarcade/space-invaders-8080/cpu8080"

// DipShipCount selects the starting number of ships via port 2 bits 0-1.
type DipShipCount uint8

const (
	ShipCount3 DipShipCount = 0
	ShipCount4 DipShipCount = 1
	ShipCount5 DipShipCount = 2
	ShipCount6 DipShipCount = 3
)

// Inputs is the live button/switch state the host polls and feeds
// into the cabinet before each port-read event is serviced.
type Inputs struct {
	Coin bool

	P1Start, P1Fire, P1Left, P1Right bool
	P2Start, P2Fire, P2Left, P2Right bool

	ShipCount    DipShipCount
	BonusAt1500  bool // false means bonus life at 1000 points
	CoinInfoOff  bool
}

// Cabinet owns the shift register and translates port reads/writes
// against the current Inputs snapshot. It does not own the CPU; the
// caller calls Service after each step, and Service drains the CPU's
// pending event itself.
type Cabinet struct {
	Inputs Inputs

	shiftHi, shiftLo uint8
	shiftOffset      uint8

	pendingSound *SoundEvent
}

// NewCabinet returns a Cabinet with all inputs released.
func NewCabinet() *Cabinet {
	return &Cabinet{}
}

// Service drains at most one pending CPU event, answering port reads
// via cpu.PortIn and recording any sound trigger produced by a port
// write. Returns false if no event was pending.
func (cab *Cabinet) Service(cpu *cpu8080.CPU) (handled bool) {
	ev, ok := cpu.Event()
	if !ok {
		return false
	}
	switch ev.Kind {
	case cpu8080.EventPortRead:
		cpu.PortIn(cab.readPort(ev.Port))
	case cpu8080.EventPortWrite:
		cab.writePort(ev.Port, ev.Data)
	case cpu8080.EventHalt:
		// Nothing to do at the cabinet level; the runtime loop decides
		// whether a halted CPU should stop advancing.
	}
	return true
}

func (cab *Cabinet) readPort(port uint8) uint8 {
	switch port {
	case 0:
		return 0x0E // idle bits fixed high, matches the reference ROM's test mode expectations
	case 1:
		var v uint8 = 0x08 // bit3 always high (P2 start inverted on some boards); harmless idle bit
		if cab.Inputs.Coin {
			v |= 1 << 0
		}
		if cab.Inputs.P2Start {
			v |= 1 << 1
		}
		if cab.Inputs.P1Start {
			v |= 1 << 2
		}
		if cab.Inputs.P1Fire {
			v |= 1 << 4
		}
		if cab.Inputs.P1Left {
			v |= 1 << 5
		}
		if cab.Inputs.P1Right {
			v |= 1 << 6
		}
		return v
	case 2:
		v := uint8(cab.Inputs.ShipCount) & 0x03
		if cab.Inputs.BonusAt1500 {
			v |= 1 << 3
		}
		if cab.Inputs.P2Fire {
			v |= 1 << 4
		}
		if cab.Inputs.P2Left {
			v |= 1 << 5
		}
		if cab.Inputs.P2Right {
			v |= 1 << 6
		}
		if cab.Inputs.CoinInfoOff {
			v |= 1 << 7
		}
		return v
	case 3:
		shiftVal := uint16(cab.shiftHi)<<8 | uint16(cab.shiftLo)
		return uint8(shiftVal >> (8 - cab.shiftOffset))
	default:
		return 0
	}
}

func (cab *Cabinet) writePort(port, data uint8) {
	switch port {
	case 2:
		cab.shiftOffset = data & 0x07
	case 3:
		cab.pendingSound = soundsForPort3(data)
	case 4:
		cab.shiftLo = cab.shiftHi
		cab.shiftHi = data
	case 5:
		cab.pendingSound = soundsForPort5(data)
	case 6:
		// Watchdog/lamp-test latch; no observable effect here.
	}
}

// TakeSoundEvent returns and clears the sound event produced by the
// most recent port-3/port-5 write, if any.
func (cab *Cabinet) TakeSoundEvent() (SoundEvent, bool) {
	if cab.pendingSound == nil {
		return SoundEvent{}, false
	}
	ev := *cab.pendingSound
	cab.pendingSound = nil
	return ev, true
}
