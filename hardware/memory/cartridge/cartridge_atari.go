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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package cartridge

import (
	"github.com/a-downing/atari2600/errors"
)

// from bankswitch_sizes.txt:
//
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// -These images are not bankswitched.
//
// 8K:
//
// -F8: This is the 'standard' method to implement 8K carts. There are two
// addresses which select between two unique 4K sections. They are 1FF8
// and 1FF9. Any access to either one of these locations switches banks.
// Accessing 1FF8 switches in the first 4K, and accessing 1FF9 switches in
// the last 4K. Note that you can only access one 4K at a time!

// atari is the shared state of the Atari-format mappers: a flat bank size,
// one or two whole banks, and the currently selected bank. Atari
// bank-switching swaps out the entire 4K window, unlike formats (not
// supported here) that map individual segments independently.
type atari struct {
	bankSize int
	banks    [][]uint8
	bank     int
}

func (cart *atari) currentBank() int {
	return cart.bank
}

// atariFlat is the unbanked format used by 2K and 4K ROMs.
type atariFlat struct {
	atari
}

func newAtariFlat(data []byte) (cartMapper, error) {
	cart := &atariFlat{}
	cart.bankSize = len(data)
	cart.banks = make([][]uint8, 1)
	cart.banks[0] = make([]uint8, cart.bankSize)
	copy(cart.banks[0], data)
	return cart, nil
}

func (cart *atariFlat) numBanks() int {
	return 1
}

func (cart *atariFlat) read(addr uint16) (uint8, error) {
	return cart.banks[0][int(addr)%cart.bankSize], nil
}

func (cart *atariFlat) write(addr uint16, data uint8) error {
	// writes to ROM outside of a bank hotspot are silently ignored
	return nil
}

// atari8k is the F8 bank-switched format used by 8K ROMs: two 4096-byte
// banks, switched by any access to $1FF8 (bank 0) or $1FF9 (bank 1).
type atari8k struct {
	atari
}

func newAtari8k(data []byte) (cartMapper, error) {
	cart := &atari8k{}
	cart.bankSize = 4096
	cart.banks = make([][]uint8, 2)

	for k := 0; k < 2; k++ {
		cart.banks[k] = make([]uint8, cart.bankSize)
		offset := k * cart.bankSize
		copy(cart.banks[k], data[offset:offset+cart.bankSize])
	}

	return cart, nil
}

func (cart *atari8k) numBanks() int {
	return 2
}

func (cart *atari8k) hotspot(addr uint16) {
	switch addr & 0x0fff {
	case 0x0ff8:
		cart.bank = 0
	case 0x0ff9:
		cart.bank = 1
	}
}

func (cart *atari8k) read(addr uint16) (uint8, error) {
	data := cart.banks[cart.bank][addr&0x0fff]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atari8k) write(addr uint16, data uint8) error {
	cart.hotspot(addr)
	return nil
}

func newMapper(data []byte) (cartMapper, error) {
	switch len(data) {
	case 2048, 4096:
		return newAtariFlat(data)
	case 8192:
		return newAtari8k(data)
	default:
		return nil, errors.Errorf(errors.CartridgeSize, len(data))
	}
}
