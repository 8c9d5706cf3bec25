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

package errors

// error messages, grouped by the package that raises them. these are the
// "head" strings passed to Errorf; Is/Has compare against them directly.
const (
	// cartridge loading
	CartridgeFileError = "cartridge: %v"
	CartridgeSize      = "cartridge: unsupported rom size (%d bytes)"

	// address bus / memory
	UnmappedRegister = "memory: unmapped register (address %#04x)"

	// RIOT
	RIOTUnmappedRead  = "riot: unmapped read register (address %#04x)"
	RIOTUnmappedWrite = "riot: unmapped write register (address %#04x)"

	// TIA
	TIAUnmappedRead  = "tia: unmapped read register (address %#04x)"
	TIAUnmappedWrite = "tia: unmapped write register (address %#04x)"

	// CPU
	UnimplementedInstruction = "cpu: unimplemented instruction (opcode %#02x at %#04x)"

	// config
	ConfigFileError = "config: %v"
)
