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

package hardware

import (
	"github.com/a-downing/atari2600/hardware/cpu"
	"github.com/a-downing/atari2600/hardware/memory"
	"github.com/a-downing/atari2600/hardware/memory/cartridge"
	"github.com/a-downing/atari2600/hardware/riot"
	"github.com/a-downing/atari2600/hardware/riot/ports"
	"github.com/a-downing/atari2600/hardware/tia"
)

// VCS composes the CPU, TIA, and RIOT on a shared address bus and is the
// sole place that advances emulated time. One machine cycle is: TIA.Cycle
// three times (TIA runs at 3x the CPU clock), RIOT.Step once, CPU.Step once
// - with RDY held low for the CPU whenever TIA.WSYNC() is set, so the CPU
// stalls on its opcode fetch until the TIA reaches the end of the
// scanline.
type VCS struct {
	CPU  *cpu.CPU
	TIA  *tia.TIA
	RIOT *riot.RIOT
	Mem  *memory.VCSMemory

	cart *cartridge.Cartridge
}

// NewVCS wires a VCS around the given cartridge data (already validated and
// sized by cartridgeloader).
func NewVCS(cartData []byte) (*VCS, error) {
	cart, err := cartridge.NewCartridge(cartData)
	if err != nil {
		return nil, err
	}

	t := tia.NewTIA()
	r := riot.NewRIOT()
	mem := memory.NewVCSMemory(r, t, cart)

	vcs := &VCS{
		CPU:  cpu.NewCPU(mem),
		TIA:  t,
		RIOT: r,
		Mem:  mem,
		cart: cart,
	}
	return vcs, nil
}

// Reset re-initialises the CPU from the reset vector. TIA and RIOT keep
// whatever state they're in - a real console's reset line only resets the
// 6507, matching spec.md's reset semantics.
func (vcs *VCS) Reset() error {
	return vcs.CPU.Reset()
}

// Step advances the machine by exactly one CPU cycle (three TIA colour
// clocks and one RIOT step). It returns as soon as any device reports a
// fatal error - an unimplemented opcode or an unmapped register access,
// per spec.md §7.
func (vcs *VCS) Step() error {
	vcs.TIA.Cycle()
	vcs.TIA.Cycle()
	vcs.TIA.Cycle()
	vcs.RIOT.Step()
	return vcs.CPU.Step(!vcs.TIA.WSYNC())
}

// WriteJoystick and WriteSwitches forward host input to the RIOT ports, so
// a host never needs to reach past VCS into its subsystems for ordinary
// input handling.
func (vcs *VCS) WriteJoystick(j ports.Joystick) {
	vcs.RIOT.WriteJoystick(j)
}

func (vcs *VCS) WriteSwitches(s ports.Switches) {
	vcs.RIOT.WriteSwitches(s)
}
