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

// Cartridge wraps the selected bank-switch mapper and presents the
// address-bus-facing Read/Write pair. addr is expected normalised to
// 0x0000-0x1fff (13-bit cartridge space mirrors 0x0000-0x0fff twice for
// the 8K format, so callers may pass the raw cartridge-relative address).
type Cartridge struct {
	mapper cartMapper
}

// NewCartridge selects a mapper by the size of data (2048, 4096, or 8192
// bytes) and returns a ready-to-use Cartridge. Any other size is a
// cartridge-loading error.
func NewCartridge(data []byte) (*Cartridge, error) {
	m, err := newMapper(data)
	if err != nil {
		return nil, err
	}
	return &Cartridge{mapper: m}, nil
}

// Read returns the byte at addr, applying any bank hotspot the access
// triggers.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(addr)
}

// Write applies addr as a potential bank-switch hotspot. Writes to
// non-hotspot ROM addresses have no effect.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(addr, data)
}

// NumBanks returns the number of 4K banks the cartridge has.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// CurrentBank returns the index of the currently-selected bank.
func (cart *Cartridge) CurrentBank() int {
	return cart.mapper.currentBank()
}
