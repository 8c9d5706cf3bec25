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

package cpu

// sr bit positions, named the same way original_source/src/cpu_6505.rs's
// sr_flags module names them.
const (
	flagCarry     uint8 = 1 << 0
	flagZero      uint8 = 1 << 1
	flagInterrupt uint8 = 1 << 2
	flagDecimal   uint8 = 1 << 3
	flagBreak     uint8 = 1 << 4
	flagUnused    uint8 = 1 << 5
	flagOverflow  uint8 = 1 << 6
	flagNegative  uint8 = 1 << 7
)

// StatusRegister is the SR register exposed as named bits, for callers that
// want to inspect or display CPU state without decoding the raw byte
// themselves. The CPU's hot path operates on the packed uint8 form directly
// (see CPU.sr); this type is a view onto it.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// ToBits renders the register as a labelled bit pattern, upper case for set
// flags and lower case for clear ones, in N V B D I Z C order.
func (sr StatusRegister) ToBits() string {
	bit := func(set bool, c byte) byte {
		if set {
			return c - ('a' - 'A')
		}
		return c
	}

	v := make([]byte, 7)
	v[0] = bit(sr.Sign, 'n')
	v[1] = bit(sr.Overflow, 'v')
	v[2] = bit(sr.Break, 'b')
	v[3] = bit(sr.DecimalMode, 'd')
	v[4] = bit(sr.InterruptDisable, 'i')
	v[5] = bit(sr.Zero, 'z')
	v[6] = bit(sr.Carry, 'c')
	return string(v)
}

func (sr StatusRegister) String() string {
	return sr.ToBits()
}

// ToUint8 packs the register into the form pushed to the stack by PHP/BRK.
// The unused bit always reads back as 1.
func (sr StatusRegister) ToUint8() uint8 {
	var v uint8
	if sr.Sign {
		v |= flagNegative
	}
	if sr.Overflow {
		v |= flagOverflow
	}
	if sr.Break {
		v |= flagBreak
	}
	if sr.DecimalMode {
		v |= flagDecimal
	}
	if sr.InterruptDisable {
		v |= flagInterrupt
	}
	if sr.Zero {
		v |= flagZero
	}
	if sr.Carry {
		v |= flagCarry
	}
	v |= flagUnused
	return v
}

// FromUint8 unpacks a raw SR byte (as pulled from the stack by PLP/RTI) into
// the named fields.
func (sr *StatusRegister) FromUint8(v uint8) {
	sr.Sign = v&flagNegative != 0
	sr.Overflow = v&flagOverflow != 0
	sr.Break = v&flagBreak != 0
	sr.DecimalMode = v&flagDecimal != 0
	sr.InterruptDisable = v&flagInterrupt != 0
	sr.Zero = v&flagZero != 0
	sr.Carry = v&flagCarry != 0
}
