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

// Package cpu implements the 6507/6502 execution engine. The CPU is
// cycle-driven: each call to Step advances exactly one bus cycle, decoding
// a new opcode on the first cycle of an instruction and then walking the
// addressing mode's documented per-cycle bus traffic, including the
// read-on-page-cross and read-modify-write double-write quirks real
// software relies on.
package cpu
