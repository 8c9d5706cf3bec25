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

// Package memory implements VCSMemory, the address bus that arbitrates
// reads and writes between Cartridge, RIOT, and TIA on every CPU cycle.
package memory

import (
	"github.com/a-downing/atari2600/hardware/memory/bus"
	"github.com/a-downing/atari2600/hardware/memory/cartridge"
)

// address decoding masks, applied to the 13-bit effective address (A0-A12)
const (
	cartMask   uint16 = 1 << 12
	cartSelect uint16 = 1 << 12
	riotMask   uint16 = 1<<12 | 1<<7
	riotSelect uint16 = 1 << 7
	tiaMask    uint16 = 1<<12 | 1<<7
	tiaSelect  uint16 = 0
)

// chipBus is the minimal register interface shared by RIOT and TIA: a
// single read/write pair keyed on the chip-relative address. Declared
// locally (rather than importing the riot/tia packages' concrete types)
// so this package only depends on the shape it actually needs.
type chipBus interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
}

// VCSMemory is the CPU-facing address bus. It implements bus.CPUBus and
// bus.DebugBus.
type VCSMemory struct {
	riot chipBus
	tia  chipBus
	cart *cartridge.Cartridge
}

var _ bus.CPUBus = (*VCSMemory)(nil)
var _ bus.DebugBus = (*VCSMemory)(nil)

// NewVCSMemory wires the three chip-select targets together. riot and tia
// are accepted as the chipBus interface so this package compiles
// independently of the hardware/riot and hardware/tia packages' internal
// layout; the hardware package supplies the concrete *riot.RIOT and
// *tia.TIA instances.
func NewVCSMemory(riot, tia chipBus, cart *cartridge.Cartridge) *VCSMemory {
	return &VCSMemory{riot: riot, tia: tia, cart: cart}
}

func decode(addr uint16) int {
	switch {
	case addr&cartMask == cartSelect:
		return decodeCart
	case addr&riotMask == riotSelect:
		return decodeRIOT
	default:
		return decodeTIA
	}
}

const (
	decodeCart = iota
	decodeRIOT
	decodeTIA
)

// Read implements bus.CPUBus.
func (mem *VCSMemory) Read(addr uint16) (uint8, error) {
	switch decode(addr) {
	case decodeCart:
		return mem.cart.Read(addr & 0x0fff)
	case decodeRIOT:
		return mem.riot.Read(addr)
	default:
		return mem.tia.Read(addr)
	}
}

// Write implements bus.CPUBus.
func (mem *VCSMemory) Write(addr uint16, data uint8) error {
	switch decode(addr) {
	case decodeCart:
		return mem.cart.Write(addr&0x0fff, data)
	case decodeRIOT:
		return mem.riot.Write(addr, data)
	default:
		return mem.tia.Write(addr, data)
	}
}

// Peek implements bus.DebugBus. It reads a location exactly as the CPU
// would, side effects included: reading a RIOT timer or interrupt-flag
// register clears flags, and reading a cartridge hotspot switches banks.
func (mem *VCSMemory) Peek(addr uint16) (uint8, error) {
	return mem.Read(addr)
}

// Poke implements bus.DebugBus. It writes a location exactly as the CPU
// would; VCSMemory draws no distinction between a CPU-driven write and a
// debugger-driven one.
func (mem *VCSMemory) Poke(addr uint16, value uint8) error {
	return mem.Write(addr, value)
}
