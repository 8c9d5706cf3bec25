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

package addresses_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/hardware/memory/addresses"
)

func TestReadSymbolsCombineTIAAndRIOT(t *testing.T) {
	require.Equal(t, "CXM0P", addresses.ReadSymbols[0x00])
	require.Equal(t, "INPT5", addresses.ReadSymbols[0x0d])
	require.Equal(t, "SWCHA", addresses.ReadSymbols[0x0280])
	require.Equal(t, uint16(0x0280), addresses.ReadAddress["SWCHA"])
}

func TestWriteSymbolsCombineTIAAndRIOT(t *testing.T) {
	require.Equal(t, "COLUBK", addresses.WriteSymbols[0x09])
	require.Equal(t, "CXCLR", addresses.WriteSymbols[0x2c])
	require.Equal(t, "TIM64T", addresses.WriteSymbols[0x0296])
	require.Equal(t, uint16(0x2c), addresses.WriteAddress["CXCLR"])
}

func TestSparseArraysMirrorTheSymbolMaps(t *testing.T) {
	require.Equal(t, "COLUP0", addresses.Write[0x06])
	require.Equal(t, "", addresses.Write[0x2d])
	require.Equal(t, "CXPPMM", addresses.Read[0x07])
	require.Equal(t, "", addresses.Read[0x0e])
}
