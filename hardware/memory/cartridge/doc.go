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

// Package cartridge implements loading and bank-switched mapping of
// cartridge ROM into the VCS's 4 KiB cartridge address space.
//
// Two schemes are supported, selected by the ROM's size:
//
//   - flat: 2048 or 4096 bytes, no bank-switching.
//
//   - F8: 8192 bytes, two 4096-byte banks, switched by any access to
//     $1FF8 (bank 0) or $1FF9 (bank 1).
package cartridge
