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

// Package cartridgeloader reads a ROM image from a local file and wraps it
// in a Loader ready to be handed to cartridge.NewCartridge. The only
// "policy" decision it makes is on the ROM's size, which the cartridge
// package uses to pick the Atari mapper (flat 2K/4K, or bank-switched F8
// 8K) - everything else about the cartridge's contents is opaque bytes.
package cartridgeloader
