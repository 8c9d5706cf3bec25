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

package cartridge

// cartMapper implementations hold the actual data from the loaded ROM and
// keep track of which bank is mapped in. Functions taking an address
// argument receive it normalised to 0x0000-0x0fff.
type cartMapper interface {
	read(addr uint16) (uint8, error)
	write(addr uint16, data uint8) error
	numBanks() int
	currentBank() int
}
