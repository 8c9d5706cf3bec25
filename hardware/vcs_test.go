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

package hardware_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/hardware"
)

// romWithResetVector builds a 4K flat ROM image with code at offset 0 (so
// CPU address $F000, the reset vector target below) and the reset vector
// itself written at the customary $FFFC/$FFFD offsets ($0FFC/$0FFD of the
// 4K image).
func romWithResetVector(code ...uint8) []byte {
	rom := make([]byte, 4096)
	copy(rom, code)
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0
	return rom
}

func TestResetVectorRunsFirstInstruction(t *testing.T) {
	// LDA #$42 ; STA $80 ; BRK
	rom := romWithResetVector(0xa9, 0x42, 0x85, 0x80, 0x00)
	vcs, err := hardware.NewVCS(rom)
	require.NoError(t, err)
	require.NoError(t, vcs.Reset())

	for i := 0; i < 7; i++ {
		require.NoError(t, vcs.Step())
	}

	v, err := vcs.Mem.Read(0x80)
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), v)
}

func TestBCDIncrementLoopWrapsToZeroWithCarry(t *testing.T) {
	// SED ; loop: CLC ; ADC #$01 ; STA $80 ; JMP loop (we step exactly
	// 200 additions and inspect the accumulator and carry directly).
	rom := romWithResetVector(
		0xf8,                   // SED
		0x18, 0x69, 0x01, 0x85, 0x80, 0x4c, 0x01, 0xf0, // loop: CLC;ADC #1;STA $80;JMP loop
	)
	vcs, err := hardware.NewVCS(rom)
	require.NoError(t, err)
	require.NoError(t, vcs.Reset())

	require.NoError(t, vcs.Step()) // SED, 2 cycles
	require.NoError(t, vcs.Step())

	const cyclesPerIteration = 2 + 2 + 3 + 3 // CLC, ADC#, STA zp, JMP abs
	for i := 0; i < 200*cyclesPerIteration; i++ {
		require.NoError(t, vcs.Step())
	}

	require.Equal(t, uint8(0x00), vcs.CPU.A)
	require.True(t, vcs.CPU.StatusRegister().Carry)
}

func TestPlayfieldColumnIsVisibleAfterSpinLoop(t *testing.T) {
	rom := romWithResetVector(
		0xa9, 0x0e, 0x85, 0x08, // LDA #$0E ; STA COLUPF
		0xa9, 0x00, 0x85, 0x09, // LDA #$00 ; STA COLUBK
		0xa9, 0x80, 0x85, 0x0d, // LDA #$80 ; STA PF0 (so pf index 4's bit, PF1 MSB per spec, is set via PF1 instead below)
		0x85, 0x0e, // STA PF1 (reuse A=$80, sets PF1 MSB)
		0x4c, 0x0e, 0xf0, // JMP $F00E (spin)
	)
	vcs, err := hardware.NewVCS(rom)
	require.NoError(t, err)
	require.NoError(t, vcs.Reset())

	for i := 0; i < 2000; i++ {
		require.NoError(t, vcs.Step())
	}

	frame := vcs.TIA.Frame()
	found := false
	for _, px := range frame {
		if px == 0x0e {
			found = true
			break
		}
	}
	require.True(t, found)
}
