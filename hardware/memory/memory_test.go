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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/hardware/memory"
	"github.com/a-downing/atari2600/hardware/memory/cartridge"
)

// recordingChip is a minimal chipBus stand-in that records the last
// address touched, so tests can verify decoding without depending on the
// real RIOT/TIA packages.
type recordingChip struct {
	name      string
	lastRead  uint16
	lastWrite uint16
	lastData  uint8
}

func (c *recordingChip) Read(addr uint16) (uint8, error) {
	c.lastRead = addr
	return 0x99, nil
}

func (c *recordingChip) Write(addr uint16, data uint8) error {
	c.lastWrite = addr
	c.lastData = data
	return nil
}

func TestAddressDecoding(t *testing.T) {
	riot := &recordingChip{name: "riot"}
	tia := &recordingChip{name: "tia"}
	cart, err := cartridge.NewCartridge(make([]byte, 4096))
	require.NoError(t, err)

	mem := memory.NewVCSMemory(riot, tia, cart)

	// A12=0, A7=0 -> TIA
	_, err = mem.Read(0x0002)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0002), tia.lastRead)

	// A12=0, A7=1 -> RIOT
	_, err = mem.Read(0x0280)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0280), riot.lastRead)

	// A12=1 -> Cartridge
	v, err := mem.Read(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint8(0), v)
}

func TestPeekAndPokeAreEquivalentToReadAndWrite(t *testing.T) {
	riot := &recordingChip{}
	tia := &recordingChip{}
	cart, err := cartridge.NewCartridge(make([]byte, 4096))
	require.NoError(t, err)

	mem := memory.NewVCSMemory(riot, tia, cart)

	require.NoError(t, mem.Poke(0x0002, 0x42))
	require.Equal(t, uint16(0x0002), tia.lastWrite)
	require.Equal(t, uint8(0x42), tia.lastData)

	v, err := mem.Peek(0x0280)
	require.NoError(t, err)
	require.Equal(t, uint8(0x99), v)
	require.Equal(t, uint16(0x0280), riot.lastRead)
}

func TestCartridgeWriteIsNotRoutedToChips(t *testing.T) {
	riot := &recordingChip{}
	tia := &recordingChip{}
	cart, err := cartridge.NewCartridge(make([]byte, 2048))
	require.NoError(t, err)

	mem := memory.NewVCSMemory(riot, tia, cart)

	err = mem.Write(0x1000, 0xaa)
	require.NoError(t, err)
	require.Equal(t, uint16(0), riot.lastWrite)
	require.Equal(t, uint16(0), tia.lastWrite)
}
