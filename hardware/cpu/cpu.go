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

package cpu

import (
	"github.com/a-downing/atari2600/errors"
)

// reset and interrupt vector addresses.
const (
	resetVector uint16 = 0xfffc
	irqVector   uint16 = 0xfffe
	stackBase   uint16 = 0x0100
)

// Bus is the two-method address bus the CPU drives. VCSMemory implements
// this.
type Bus interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
}

// CPU is a cycle-stepped 6507. Every call to Step advances exactly one bus
// cycle: the first cycle of an instruction fetches and decodes the opcode,
// and the remaining cycles walk the addressing mode's documented bus
// traffic, one cycle per Step call. The 6507 omits the 6502's IRQ, NMI, and
// SO pins, so the only external control signal is RDY (modelled by Step's
// rdy parameter) - the VCS uses it to stall the CPU during TIA's WSYNC.
type CPU struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	sr uint8

	cycle  uint8
	cycles uint64

	tmp uint8

	addr        uint16
	addrInvalid bool
	ptr         uint16
	ptrInvalid  bool

	instruction Instruction

	bus Bus
	err error
}

// NewCPU returns a CPU wired to bus. Call Reset before the first Step.
func NewCPU(bus Bus) *CPU {
	return &CPU{
		bus:         bus,
		cycle:       1,
		instruction: Instruction{Name: Brk, Mode: Implied},
	}
}

// Cycles returns the number of bus cycles executed since the last Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// StatusRegister returns the SR register unpacked into named fields.
func (c *CPU) StatusRegister() StatusRegister {
	var sr StatusRegister
	sr.FromUint8(c.sr)
	return sr
}

// SetStatusRegister packs sr and stores it as the SR register.
func (c *CPU) SetStatusRegister(sr StatusRegister) {
	c.sr = sr.ToUint8()
}

// Reset loads PC from the reset vector and puts the CPU in its post-reset
// state, ready to fetch the first opcode on the next Step.
func (c *CPU) Reset() error {
	c.err = nil
	lo := c.busRead(resetVector)
	hi := c.busRead(resetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.SP = 0xfd
	c.sr = flagUnused | flagInterrupt
	c.A, c.X, c.Y = 0, 0, 0
	c.cycle = 1
	c.cycles = 0
	c.instruction = Instruction{Name: Brk, Mode: Implied}
	return c.err
}

func (c *CPU) busRead(addr uint16) uint8 {
	v, err := c.bus.Read(addr)
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *CPU) busWrite(addr uint16, data uint8) {
	if err := c.bus.Write(addr, data); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *CPU) push(v uint8) {
	c.busWrite(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.busRead(stackBase + uint16(c.SP))
}

// Step advances the CPU by one bus cycle. rdy models the RDY pin: while low
// and the CPU is between instructions, the fetch/decode stalls and no cycle
// is consumed (TIA's WSYNC holds RDY low this way). Step returns the first
// bus error encountered during the cycle, or an unimplemented-instruction
// error if an undocumented opcode is fetched.
func (c *CPU) Step(rdy bool) error {
	c.err = nil

	if c.cycle == 1 {
		if !rdy {
			return nil
		}
		opcode := c.busRead(c.PC)
		c.PC++
		instr, ok := decode(opcode)
		if !ok {
			return errors.Errorf(errors.UnimplementedInstruction, opcode, c.PC-1)
		}
		c.instruction = instr
	} else {
		switch c.instruction.Mode {
		case Special:
			c.special()
		case Implied:
			c.implied()
		case Accumulator:
			c.accumulator()
		case Immediate:
			c.immediate()
		case Absolute:
			c.absolute(c.instruction.Access)
		case ZeroPage:
			c.zeroPage(c.instruction.Access)
		case ZeroPageIndexedX:
			c.zeroPageIndexed(&c.X, c.instruction.Access)
		case ZeroPageIndexedY:
			c.zeroPageIndexed(&c.Y, c.instruction.Access)
		case AbsoluteIndexedX:
			c.absoluteIndexed(&c.X, c.instruction.Access)
		case AbsoluteIndexedY:
			c.absoluteIndexed(&c.Y, c.instruction.Access)
		case Relative:
			c.relative()
		case XIndexedIndirect:
			c.xIndexedIndirect(c.instruction.Access)
		case IndirectIndexedY:
			c.indirectIndexedY(c.instruction.Access)
		case Indirect:
			c.indirectJMP()
		}
	}

	c.cycle++
	c.cycles++
	return c.err
}

func (c *CPU) accumulator() {
	c.busRead(c.PC)
	c.A = c.executeRMW(c.A)
	c.cycle = 0
}

func (c *CPU) immediate() {
	v := c.busRead(c.PC)
	c.PC++
	c.executeRead(v)
	c.cycle = 0
}

func (c *CPU) implied() {
	c.busRead(c.PC)
	switch c.instruction.Name {
	case Sei:
		c.sr |= flagInterrupt
	case Cli:
		c.sr &^= flagInterrupt
	case Sed:
		c.sr |= flagDecimal
	case Cld:
		c.sr &^= flagDecimal
	case Clc:
		c.sr &^= flagCarry
	case Sec:
		c.sr |= flagCarry
	case Clv:
		c.sr &^= flagOverflow
	case Tay:
		c.Y = c.A
		c.updateFlags(c.Y)
	case Tax:
		c.X = c.A
		c.updateFlags(c.X)
	case Txa:
		c.A = c.X
		c.updateFlags(c.A)
	case Tya:
		c.A = c.Y
		c.updateFlags(c.A)
	case Txs:
		c.SP = c.X
	case Tsx:
		c.X = c.SP
		c.updateFlags(c.X)
	case Inx:
		c.X++
		c.updateFlags(c.X)
	case Iny:
		c.Y++
		c.updateFlags(c.Y)
	case Dex:
		c.X--
		c.updateFlags(c.X)
	case Dey:
		c.Y--
		c.updateFlags(c.Y)
	case Nop:
	}
	c.cycle = 0
}

func (c *CPU) relative() {
	switch c.cycle {
	case 2:
		offset := c.busRead(c.PC)
		c.PC++

		var taken bool
		switch c.instruction.Name {
		case Bpl:
			taken = c.sr&flagNegative == 0
		case Bmi:
			taken = c.sr&flagNegative != 0
		case Bvc:
			taken = c.sr&flagOverflow == 0
		case Bvs:
			taken = c.sr&flagOverflow != 0
		case Bcc:
			taken = c.sr&flagCarry == 0
		case Bcs:
			taken = c.sr&flagCarry != 0
		case Bne:
			taken = c.sr&flagZero == 0
		case Beq:
			taken = c.sr&flagZero != 0
		}

		c.addr = uint16(int32(c.PC) + int32(int8(offset)))
		if !taken {
			c.cycle = 0
		}
	case 3:
		c.busRead(c.PC)
		if c.addr&0xff00 == c.PC&0xff00 {
			c.PC = c.addr
			c.cycle = 0
		}
	case 4:
		c.busRead(c.PC)
		c.PC = c.addr
		c.cycle = 0
	}
}

func (c *CPU) absolute(access AccessType) {
	switch c.cycle {
	case 2:
		lo := c.busRead(c.PC)
		c.PC++
		c.addr = uint16(lo)
	case 3:
		hi := c.busRead(c.PC)
		c.PC++
		c.addr |= uint16(hi) << 8
		if access == Read && c.instruction.Name == Jmp {
			c.PC = c.addr
			c.cycle = 0
		}
	case 4:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 5:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 6:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

func (c *CPU) zeroPage(access AccessType) {
	switch c.cycle {
	case 2:
		addr := c.busRead(c.PC)
		c.PC++
		c.addr = uint16(addr)
	case 3:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 4:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 5:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

func (c *CPU) zeroPageIndexed(reg *uint8, access AccessType) {
	switch c.cycle {
	case 2:
		addr := c.busRead(c.PC)
		c.PC++
		c.addr = uint16(addr)
	case 3:
		c.busRead(c.addr)
		c.addr = uint16(uint8(c.addr) + *reg)
	case 4:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 5:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 6:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

func (c *CPU) absoluteIndexed(reg *uint8, access AccessType) {
	switch c.cycle {
	case 2:
		lo := c.busRead(c.PC)
		c.PC++
		c.addr = uint16(lo)
	case 3:
		hi := c.busRead(c.PC)
		c.PC++
		sum := uint16(uint8(c.addr)) + uint16(*reg)
		c.addrInvalid = sum > 0xff
		c.addr = uint16(hi)<<8 | (sum & 0xff)
	case 4:
		v := c.busRead(c.addr)
		if access == Read && !c.addrInvalid {
			c.executeRead(v)
			c.cycle = 0
		}
		if c.addrInvalid {
			c.addr += 0x0100
			c.addrInvalid = false
		}
	case 5:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 6:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 7:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

func (c *CPU) xIndexedIndirect(access AccessType) {
	switch c.cycle {
	case 2:
		zp := c.busRead(c.PC)
		c.PC++
		c.ptr = uint16(zp)
	case 3:
		c.busRead(c.ptr)
		c.ptr = uint16(uint8(c.ptr) + c.X)
	case 4:
		lo := c.busRead(c.ptr)
		c.addr = uint16(lo)
	case 5:
		hi := c.busRead(uint16(uint8(c.ptr) + 1))
		c.addr |= uint16(hi) << 8
	case 6:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 7:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 8:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

func (c *CPU) indirectIndexedY(access AccessType) {
	switch c.cycle {
	case 2:
		zp := c.busRead(c.PC)
		c.PC++
		c.ptr = uint16(zp)
	case 3:
		lo := c.busRead(c.ptr)
		c.addr = uint16(lo)
	case 4:
		hi := c.busRead(uint16(uint8(c.ptr) + 1))
		sum := uint16(uint8(c.addr)) + uint16(c.Y)
		c.ptrInvalid = sum > 0xff
		c.addr = uint16(hi)<<8 | (sum & 0xff)
	case 5:
		v := c.busRead(c.addr)
		if access == Read && !c.ptrInvalid {
			c.executeRead(v)
			c.cycle = 0
		}
		if c.ptrInvalid {
			c.addr += 0x0100
			c.ptrInvalid = false
		}
	case 6:
		switch access {
		case Read:
			v := c.busRead(c.addr)
			c.executeRead(v)
			c.cycle = 0
		case Write:
			c.executeWrite(c.addr)
			c.cycle = 0
		case ReadModifyWrite:
			c.tmp = c.busRead(c.addr)
		}
	case 7:
		c.busWrite(c.addr, c.tmp)
		c.tmp = c.executeRMW(c.tmp)
	case 8:
		c.busWrite(c.addr, c.tmp)
		c.cycle = 0
	}
}

// indirectJMP implements JMP ($addr), including the classic page-wrap bug:
// when the pointer's low byte is 0xFF, the high byte of the target is
// fetched from the start of the same page rather than the next one.
func (c *CPU) indirectJMP() {
	switch c.cycle {
	case 2:
		lo := c.busRead(c.PC)
		c.PC++
		c.ptr = uint16(lo)
	case 3:
		hi := c.busRead(c.PC)
		c.PC++
		c.ptr |= uint16(hi) << 8
	case 4:
		lo := c.busRead(c.ptr)
		c.addr = uint16(lo)
	case 5:
		hiAddr := c.ptr&0xff00 | uint16(uint8(c.ptr)+1)
		hi := c.busRead(hiAddr)
		c.addr |= uint16(hi) << 8
		c.PC = c.addr
		c.cycle = 0
	}
}

func (c *CPU) special() {
	switch c.instruction.Name {
	case Jsr:
		switch c.cycle {
		case 2:
			lo := c.busRead(c.PC)
			c.PC++
			c.tmp = lo
		case 3:
			c.busRead(stackBase + uint16(c.SP))
		case 4:
			c.push(uint8(c.PC >> 8))
		case 5:
			c.push(uint8(c.PC))
		case 6:
			hi := c.busRead(c.PC)
			c.PC = uint16(hi)<<8 | uint16(c.tmp)
			c.cycle = 0
		}
	case Rts:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.busRead(stackBase + uint16(c.SP))
		case 4:
			c.tmp = c.pop()
		case 5:
			hi := c.pop()
			c.PC = uint16(hi)<<8 | uint16(c.tmp)
		case 6:
			c.busRead(c.PC)
			c.PC++
			c.cycle = 0
		}
	case Brk:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
			c.PC++
		case 3:
			c.push(uint8(c.PC >> 8))
		case 4:
			c.push(uint8(c.PC))
		case 5:
			c.push(c.sr | flagBreak | flagUnused)
			c.sr |= flagInterrupt
		case 6:
			c.tmp = c.busRead(irqVector)
		case 7:
			hi := c.busRead(irqVector + 1)
			c.PC = uint16(hi)<<8 | uint16(c.tmp)
			c.cycle = 0
		}
	case Rti:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.busRead(stackBase + uint16(c.SP))
		case 4:
			v := c.pop()
			c.sr = (v &^ flagBreak) | flagUnused
		case 5:
			c.tmp = c.pop()
		case 6:
			hi := c.pop()
			c.PC = uint16(hi)<<8 | uint16(c.tmp)
			c.cycle = 0
		}
	case Php:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.push(c.sr | flagBreak | flagUnused)
			c.cycle = 0
		}
	case Pha:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.push(c.A)
			c.cycle = 0
		}
	case Pla:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.busRead(stackBase + uint16(c.SP))
		case 4:
			c.A = c.pop()
			c.updateFlags(c.A)
			c.cycle = 0
		}
	case Plp:
		switch c.cycle {
		case 2:
			c.busRead(c.PC)
		case 3:
			c.busRead(stackBase + uint16(c.SP))
		case 4:
			v := c.pop()
			c.sr = (v &^ flagBreak) | flagUnused
			c.cycle = 0
		}
	}
}

func (c *CPU) updateFlags(v uint8) {
	if v == 0 {
		c.sr |= flagZero
	} else {
		c.sr &^= flagZero
	}
	if v&flagNegative != 0 {
		c.sr |= flagNegative
	} else {
		c.sr &^= flagNegative
	}
}

func (c *CPU) setCarry(set bool) {
	if set {
		c.sr |= flagCarry
	} else {
		c.sr &^= flagCarry
	}
}

func (c *CPU) setOverflow(set bool) {
	if set {
		c.sr |= flagOverflow
	} else {
		c.sr &^= flagOverflow
	}
}

func (c *CPU) executeRead(value uint8) {
	switch c.instruction.Name {
	case Lda:
		c.A = value
		c.updateFlags(c.A)
	case Ldx:
		c.X = value
		c.updateFlags(c.X)
	case Ldy:
		c.Y = value
		c.updateFlags(c.Y)
	case Ora:
		c.A |= value
		c.updateFlags(c.A)
	case And:
		c.A &= value
		c.updateFlags(c.A)
	case Eor:
		c.A ^= value
		c.updateFlags(c.A)
	case Adc:
		c.adc(value)
	case Sbc:
		c.sbc(value)
	case Cmp:
		c.compare(c.A, value)
	case Cpx:
		c.compare(c.X, value)
	case Cpy:
		c.compare(c.Y, value)
	case Bit:
		c.setOverflow(false)
		result := c.A & value
		if result == 0 {
			c.sr |= flagZero
		} else {
			c.sr &^= flagZero
		}
		c.sr = c.sr&^(flagOverflow|flagNegative) | (value & (flagOverflow | flagNegative))
	}
}

func (c *CPU) executeWrite(addr uint16) {
	switch c.instruction.Name {
	case Sta:
		c.busWrite(addr, c.A)
	case Stx:
		c.busWrite(addr, c.X)
	case Sty:
		c.busWrite(addr, c.Y)
	}
}

func (c *CPU) executeRMW(value uint8) uint8 {
	switch c.instruction.Name {
	case Asl:
		carryOut := value&0x80 != 0
		value <<= 1
		c.setCarry(carryOut)
		c.updateFlags(value)
	case Lsr:
		carryOut := value&0x01 != 0
		value >>= 1
		c.setCarry(carryOut)
		c.updateFlags(value)
	case Rol:
		carryIn := c.sr&flagCarry != 0
		carryOut := value&0x80 != 0
		value <<= 1
		if carryIn {
			value |= 0x01
		}
		c.setCarry(carryOut)
		c.updateFlags(value)
	case Ror:
		carryIn := c.sr&flagCarry != 0
		carryOut := value&0x01 != 0
		value >>= 1
		if carryIn {
			value |= 0x80
		}
		c.setCarry(carryOut)
		c.updateFlags(value)
	case Inc:
		value++
		c.updateFlags(value)
	case Dec:
		value--
		c.updateFlags(value)
	}
	return value
}

func (c *CPU) compare(reg, operand uint8) {
	diff := reg - operand
	c.updateFlags(diff)
	c.setCarry(reg >= operand)
}

// addBin performs binary (non-decimal) addition, returning the result, the
// carry out of bit 7, and the signed overflow flag.
func addBin(a, b uint8, carryIn bool) (result uint8, carryOut, overflow bool) {
	var carry uint16
	if carryIn {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	result = uint8(sum)
	carryOut = sum > 0xff
	overflow = (a^b)&0x80 == 0 && (a^result)&0x80 != 0
	return result, carryOut, overflow
}

func (c *CPU) adc(value uint8) {
	carryIn := c.sr&flagCarry != 0
	if c.sr&flagDecimal != 0 {
		c.addBCD(value, carryIn)
		return
	}
	result, carryOut, overflow := addBin(c.A, value, carryIn)
	c.A = result
	c.setCarry(carryOut)
	c.setOverflow(overflow)
	c.updateFlags(c.A)
}

func (c *CPU) sbc(value uint8) {
	carryIn := c.sr&flagCarry != 0
	if c.sr&flagDecimal != 0 {
		c.subBCD(value, carryIn)
		return
	}
	result, carryOut, overflow := addBin(c.A, ^value, carryIn)
	c.A = result
	c.setCarry(carryOut)
	c.setOverflow(overflow)
	c.updateFlags(c.A)
}

// addBCD implements ADC in BCD mode, including the NMOS 6502's quirky flag
// behaviour: V is computed from the nibble-adjusted intermediate before the
// high-nibble decimal carry is folded in.
func (c *CPU) addBCD(value uint8, carryIn bool) {
	a := c.A
	var carry uint16
	if carryIn {
		carry = 1
	}

	lo := uint16(a&0x0f) + uint16(value&0x0f) + carry
	hi := uint16(a&0xf0) + uint16(value&0xf0)

	c.sr &^= flagCarry | flagOverflow

	if lo > 9 {
		hi += 0x10
		lo += 0x06
	}

	overflow := (^(a ^ value))&(a^uint8(hi))&0x80 != 0
	c.setOverflow(overflow)

	if hi > 0x90 {
		hi += 0x60
	}
	if hi&0xff00 != 0 {
		c.sr |= flagCarry
	}

	result := uint8(lo&0x0f) | uint8(hi&0xf0)
	c.A = result
	c.updateFlags(result)
}

// subBCD implements SBC in BCD mode.
func (c *CPU) subBCD(value uint8, carryIn bool) {
	a := c.A
	var borrow uint8
	if !carryIn {
		borrow = 1
	}

	tmp := uint16(a) - uint16(value) - uint16(borrow)

	loU8 := (a & 0x0f) - (value & 0x0f) - borrow
	lo := uint16(loU8)
	hi := uint16(a&0xf0) - uint16(value&0xf0)

	c.sr &^= flagCarry | flagOverflow

	if lo&0x10 != 0 {
		lo -= 6
		hi -= 1
	}
	if hi&0x0100 != 0 {
		hi -= 0x60
	}

	if tmp&0xff00 == 0 {
		c.sr |= flagCarry
	}

	overflow := (a^value)&(a^uint8(tmp))&0x80 != 0
	c.setOverflow(overflow)

	result := uint8(lo&0x0f) | uint8(hi&0xf0)
	c.A = result
	c.updateFlags(result)
}
