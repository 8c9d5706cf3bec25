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

package cpu_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/hardware/cpu"
)

// registerSnapshot is a comparable view of the CPU's visible register state,
// for table-driven tests that want a readable diff of "everything that
// changed" rather than asserting on one field at a time.
type registerSnapshot struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	SR cpu.StatusRegister
}

func snapshot(c *cpu.CPU) registerSnapshot {
	return registerSnapshot{PC: c.PC, SP: c.SP, A: c.A, X: c.X, Y: c.Y, SR: c.StatusRegister()}
}

// flatMemory is a 64K byte array standing in for the VCS address bus, for
// tests that only care about CPU behaviour.
type flatMemory struct {
	data [65536]uint8
}

func (m *flatMemory) Read(addr uint16) (uint8, error) {
	return m.data[addr], nil
}

func (m *flatMemory) Write(addr uint16, data uint8) error {
	m.data[addr] = data
	return nil
}

func (m *flatMemory) load(addr uint16, program ...uint8) {
	for i, b := range program {
		m.data[int(addr)+i] = b
	}
}

func TestResetLoadsVectorAndFlags(t *testing.T) {
	mem := &flatMemory{}
	c := cpu.NewCPU(mem)
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0xf0
	require.NoError(t, c.Reset())
	require.Equal(t, uint16(0xf000), c.PC)
	require.Equal(t, uint8(0xfd), c.SP)
	sr := c.StatusRegister()
	require.True(t, sr.InterruptDisable)
}

func TestLDAImmediate(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xa9, 0x00) // LDA #$00
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	require.NoError(t, c.Step(true)) // cycle 1: fetch opcode
	require.NoError(t, c.Step(true)) // cycle 2: fetch operand, execute
	require.Equal(t, uint8(0), c.A)
	require.True(t, c.StatusRegister().Zero)
	require.False(t, c.StatusRegister().Sign)
}

func TestLDAAbsoluteFourCycles(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xad, 0x34, 0x12) // LDA $1234
	mem.data[0x1234] = 0x80
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint8(0x80), c.A)
	require.True(t, c.StatusRegister().Sign)
}

func TestSTAAbsolute(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x8d, 0x00, 0x02) // STA $0200
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.A = 0x42

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint8(0x42), mem.data[0x0200])
}

func TestINCAbsoluteSixCycles(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xee, 0x00, 0x02) // INC $0200
	mem.data[0x0200] = 0x7f
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	for i := 0; i < 6; i++ {
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint8(0x80), mem.data[0x0200])
	require.True(t, c.StatusRegister().Sign)
}

func TestAbsoluteIndexedPageCrossAddsCycle(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xbd, 0xff, 0x00) // LDA $00FF,X
	mem.data[0x0100] = 0x55            // with X=1 -> effective $0100
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.X = 1

	// no page cross would finish in 4 cycles; the cross forces a 5th.
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step(true))
	}
	require.NotEqual(t, uint8(0x55), c.A)
	require.NoError(t, c.Step(true))
	require.Equal(t, uint8(0x55), c.A)
}

func TestBranchNotTakenTwoCycles(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xf0, 0x10, 0xa9, 0x01) // BEQ +16 ; LDA #$01
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	// Z flag clear -> branch not taken
	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.Equal(t, uint16(0xf002), c.PC)
}

func TestBranchTakenSamePageThreeCycles(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xf0, 0x10) // BEQ +16
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.SetStatusRegister(cpu.StatusRegister{Zero: true})

	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.Equal(t, uint16(0xf012), c.PC)
}

func TestJSRAndRTS(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x20, 0x00, 0xf1) // JSR $f100
	mem.load(0xf100, 0x60)             // RTS
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	for i := 0; i < 6; i++ { // JSR: 6 cycles
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint16(0xf100), c.PC)

	for i := 0; i < 6; i++ { // RTS: 6 cycles
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint16(0xf003), c.PC)
}

func TestPHAPLARoundTrip(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x48, 0xa9, 0x00, 0x68) // PHA ; LDA #0 ; PLA
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.A = 0x7e

	for i := 0; i < 3; i++ { // PHA
		require.NoError(t, c.Step(true))
	}
	for i := 0; i < 2; i++ { // LDA #0
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint8(0), c.A)
	for i := 0; i < 4; i++ { // PLA
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint8(0x7e), c.A)
}

func TestADCBinaryOverflow(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x69, 0x10) // ADC #$10
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.A = 0x7f // +0x10 crosses from positive into negative: signed overflow

	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.Equal(t, uint8(0x8f), c.A)
	require.True(t, c.StatusRegister().Overflow)
	require.False(t, c.StatusRegister().Carry)
}

func TestADCDecimalMode(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x69, 0x01) // ADC #$01
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.SetStatusRegister(cpu.StatusRegister{DecimalMode: true})
	c.A = 0x09 // BCD 09 + 01 = 10

	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.Equal(t, uint8(0x10), c.A)
	require.False(t, c.StatusRegister().Carry)
}

func TestCMPSetsCarryWhenRegGreaterOrEqual(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xc9, 0x10) // CMP #$10
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())
	c.A = 0x10

	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.True(t, c.StatusRegister().Carry)
	require.True(t, c.StatusRegister().Zero)
}

func TestRDYStallsOpcodeFetch(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xa9, 0x01) // LDA #$01
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	// RDY held low: the opcode fetch cycle does not advance PC or consume
	// the instruction.
	require.NoError(t, c.Step(false))
	require.Equal(t, uint16(0xf000), c.PC)
	require.NoError(t, c.Step(false))
	require.Equal(t, uint16(0xf000), c.PC)

	require.NoError(t, c.Step(true))
	require.NoError(t, c.Step(true))
	require.Equal(t, uint8(0x01), c.A)
}

func TestUndefinedOpcodeIsFatal(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xff) // not a documented opcode
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	err := c.Step(true)
	require.Error(t, err)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0x6c, 0xff, 0x02) // JMP ($02FF)
	mem.data[0x02ff] = 0x00
	mem.data[0x0200] = 0x12 // the bug: high byte comes from $0200, not $0300
	mem.data[0x0300] = 0xff
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Step(true))
	}
	require.Equal(t, uint16(0x1200), c.PC)
}

func TestADCImmediateRegisterSnapshot(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0xf000, 0xa9, 0x10, 0x69, 0x05) // LDA #$10 ; ADC #$05
	mem.data[0xfffc], mem.data[0xfffd] = 0x00, 0xf0
	c := cpu.NewCPU(mem)
	require.NoError(t, c.Reset())

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step(true))
	}

	want := registerSnapshot{
		PC: 0xf004,
		SP: 0xfd,
		A:  0x15,
		X:  0,
		Y:  0,
		SR: cpu.StatusRegister{InterruptDisable: true},
	}
	got := snapshot(c)
	if diff := deep.Equal(want, got); diff != nil {
		t.Fatalf("register snapshot mismatch: %v\nstate: %s", diff, spew.Sdump(c))
	}
}
