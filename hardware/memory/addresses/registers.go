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

package addresses

// ChipRegister specifies the offset of a chip register in the chip memory
// areas. It is used in contexts where a register is required, as opposed to an
// address.
type ChipRegister int

// TIA registers
//
// These values name the TIA's read registers and index DataMasks (see
// OpenBusRead).
//
// Values are enumerated from 0; each value is the register's offset from the
// origin address of the TIA.
const (
	CXM0P ChipRegister = iota
	CXM1P
	CXP0FB
	CXP1FB
	CXM0FB
	CXM1FB
	CXBLPF
	CXPPMM
	INPT0
	INPT1
	INPT2
	INPT3
	INPT4
	INPT5
)

// RIOT registers
//
// These values name the RIOT's registers; the RIOT package keeps its own
// fields and does not use them.
//
// Values are enumerated from 0; each value is the register's offset from the
// origin address of the RIOT (0x280).
const (
	SWCHA ChipRegister = iota
	SWACNT
	SWCHB
	SWBCNT
	INTIM
	TIMINT
)
