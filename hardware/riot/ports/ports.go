// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package ports names the bit conventions of the RIOT's two I/O ports and
// of the TIA's trigger input latches, so that a host (or a test)
// can set a single named input without hand-rolling bitmasks.
package ports

// Port A (joystick) bit layout. Bits [7:4] are player 0's Right/Left/Down/Up;
// bits [3:0] are player 1's. All active-low: 0 means pressed.
const (
	P0Right uint8 = 1 << 7
	P0Left  uint8 = 1 << 6
	P0Down  uint8 = 1 << 5
	P0Up    uint8 = 1 << 4
	P1Right uint8 = 1 << 3
	P1Left  uint8 = 1 << 2
	P1Down  uint8 = 1 << 1
	P1Up    uint8 = 1 << 0
)

// Port B (console switches) bit layout. Reset and Select are active-low;
// Color/BW and the two difficulty switches are active-high (1 = Color,
// 1 = Advanced/"A").
const (
	SwitchReset   uint8 = 1 << 0
	SwitchSelect  uint8 = 1 << 1
	SwitchColor   uint8 = 1 << 3
	SwitchP0Diff  uint8 = 1 << 6
	SwitchP1Diff  uint8 = 1 << 7
)

// Trigger is the bit convention of TIA INPT4/INPT5: bit 7 set means
// released, clear means pressed.
const TriggerReleased uint8 = 1 << 7

// Joystick is a mutable view of a RIOT port A byte.
type Joystick struct {
	value uint8
}

// NewJoystick returns a Joystick with every direction released.
func NewJoystick() Joystick {
	return Joystick{value: 0xff}
}

// Value returns the port A byte as the RIOT sees it.
func (j Joystick) Value() uint8 {
	return j.value
}

func (j *Joystick) set(bit uint8, pressed bool) {
	if pressed {
		j.value &^= bit
	} else {
		j.value |= bit
	}
}

func (j *Joystick) SetP0Up(pressed bool)    { j.set(P0Up, pressed) }
func (j *Joystick) SetP0Down(pressed bool)  { j.set(P0Down, pressed) }
func (j *Joystick) SetP0Left(pressed bool)  { j.set(P0Left, pressed) }
func (j *Joystick) SetP0Right(pressed bool) { j.set(P0Right, pressed) }
func (j *Joystick) SetP1Up(pressed bool)    { j.set(P1Up, pressed) }
func (j *Joystick) SetP1Down(pressed bool)  { j.set(P1Down, pressed) }
func (j *Joystick) SetP1Left(pressed bool)  { j.set(P1Left, pressed) }
func (j *Joystick) SetP1Right(pressed bool) { j.set(P1Right, pressed) }

// Switches is a mutable view of a RIOT port B byte.
type Switches struct {
	value uint8
}

// NewSwitches returns a Switches with Reset/Select unpressed and the
// Color/BW switch set to Color.
func NewSwitches() Switches {
	return Switches{value: 0xff}
}

// Value returns the port B byte as the RIOT sees it.
func (s Switches) Value() uint8 {
	return s.value
}

// SetReset holds the Reset switch pressed for as long as pressed is true.
func (s *Switches) SetReset(pressed bool) {
	if pressed {
		s.value &^= SwitchReset
	} else {
		s.value |= SwitchReset
	}
}

// SetSelect holds the Select switch pressed for as long as pressed is true.
func (s *Switches) SetSelect(pressed bool) {
	if pressed {
		s.value &^= SwitchSelect
	} else {
		s.value |= SwitchSelect
	}
}

// SetColor sets the Color/BW switch: true selects Color, false selects B/W.
func (s *Switches) SetColor(color bool) {
	if color {
		s.value |= SwitchColor
	} else {
		s.value &^= SwitchColor
	}
}

// SetP0Difficulty sets player 0's difficulty switch: true selects Advanced
// ("A"), false selects Beginner ("B").
func (s *Switches) SetP0Difficulty(advanced bool) {
	if advanced {
		s.value |= SwitchP0Diff
	} else {
		s.value &^= SwitchP0Diff
	}
}

// SetP1Difficulty sets player 1's difficulty switch: true selects Advanced
// ("A"), false selects Beginner ("B").
func (s *Switches) SetP1Difficulty(advanced bool) {
	if advanced {
		s.value |= SwitchP1Diff
	} else {
		s.value &^= SwitchP1Diff
	}
}

// Trigger is a mutable view of a TIA INPT4/INPT5 latch.
type Trigger struct {
	value uint8
}

// NewTrigger returns a Trigger in the released state.
func NewTrigger() Trigger {
	return Trigger{value: TriggerReleased}
}

// Value returns the INPT register byte as the TIA sees it.
func (t Trigger) Value() uint8 {
	return t.value
}

// SetPressed presses or releases the trigger.
func (t *Trigger) SetPressed(pressed bool) {
	if pressed {
		t.value = 0
	} else {
		t.value = TriggerReleased
	}
}
