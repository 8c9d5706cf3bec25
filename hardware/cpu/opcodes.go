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

// Mnemonic names a 6502 instruction, independent of its addressing mode.
type Mnemonic int

const (
	Brk Mnemonic = iota
	Ora
	Asl
	Php
	Bpl
	Clc
	Jsr
	And
	Bit
	Rol
	Plp
	Bmi
	Sec
	Rti
	Eor
	Lsr
	Pha
	Jmp
	Bvc
	Cli
	Rts
	Adc
	Ror
	Pla
	Bvs
	Sei
	Sta
	Sty
	Stx
	Dey
	Txa
	Bcc
	Tya
	Txs
	Ldy
	Lda
	Ldx
	Tay
	Tax
	Bcs
	Clv
	Tsx
	Cpy
	Cmp
	Dec
	Iny
	Dex
	Bne
	Cld
	Cpx
	Sbc
	Inc
	Inx
	Nop
	Beq
	Sed
)

// AccessType distinguishes the three bus-traffic shapes an addressing mode
// can carry an opcode's operand with.
type AccessType int

const (
	Read AccessType = iota
	Write
	ReadModifyWrite
)

// AddressMode names how an instruction's operand is fetched. Modes that can
// carry any of the three AccessType shapes record which one a given opcode
// uses in the Instruction's Access field; modes that are inherently one
// shape (branches, stack operations, JMP, immediate values) ignore it.
type AddressMode int

const (
	Special AddressMode = iota
	Implied
	Accumulator
	Immediate
	Absolute
	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY
	AbsoluteIndexedX
	AbsoluteIndexedY
	Relative
	XIndexedIndirect
	IndirectIndexedY
	Indirect
)

// Instruction is the decoded shape of an opcode: what it does, how its
// operand is addressed, and (for the modes that need it) whether that
// operand is read, written, or read-modify-written.
type Instruction struct {
	Name   Mnemonic
	Mode   AddressMode
	Access AccessType
}

// decodeTable is indexed by opcode byte. Undefined (illegal) opcodes are
// left at the zero Instruction with ok=false in the parallel validity table,
// since this emulator only implements the documented 6502 instruction set.
var decodeTable [256]Instruction
var decodeValid [256]bool

func def(opcode uint8, name Mnemonic, mode AddressMode, access AccessType) {
	decodeTable[opcode] = Instruction{Name: name, Mode: mode, Access: access}
	decodeValid[opcode] = true
}

func init() {
	def(0x00, Brk, Special, Read)
	def(0x01, Ora, XIndexedIndirect, Read)
	def(0x05, Ora, ZeroPage, Read)
	def(0x06, Asl, ZeroPage, ReadModifyWrite)
	def(0x08, Php, Special, Read)
	def(0x09, Ora, Immediate, Read)
	def(0x0a, Asl, Accumulator, ReadModifyWrite)
	def(0x0d, Ora, Absolute, Read)
	def(0x0e, Asl, Absolute, ReadModifyWrite)

	def(0x10, Bpl, Relative, Read)
	def(0x11, Ora, IndirectIndexedY, Read)
	def(0x15, Ora, ZeroPageIndexedX, Read)
	def(0x16, Asl, ZeroPageIndexedX, ReadModifyWrite)
	def(0x18, Clc, Implied, Read)
	def(0x19, Ora, AbsoluteIndexedY, Read)
	def(0x1d, Ora, AbsoluteIndexedX, Read)
	def(0x1e, Asl, AbsoluteIndexedX, ReadModifyWrite)

	def(0x20, Jsr, Special, Read)
	def(0x21, And, XIndexedIndirect, Read)
	def(0x24, Bit, ZeroPage, Read)
	def(0x25, And, ZeroPage, Read)
	def(0x26, Rol, ZeroPage, ReadModifyWrite)
	def(0x28, Plp, Special, Read)
	def(0x29, And, Immediate, Read)
	def(0x2a, Rol, Accumulator, ReadModifyWrite)
	def(0x2c, Bit, Absolute, Read)
	def(0x2d, And, Absolute, Read)
	def(0x2e, Rol, Absolute, ReadModifyWrite)

	def(0x30, Bmi, Relative, Read)
	def(0x31, And, IndirectIndexedY, Read)
	def(0x35, And, ZeroPageIndexedX, Read)
	def(0x36, Rol, ZeroPageIndexedX, ReadModifyWrite)
	def(0x38, Sec, Implied, Read)
	def(0x39, And, AbsoluteIndexedY, Read)
	def(0x3d, And, AbsoluteIndexedX, Read)
	def(0x3e, Rol, AbsoluteIndexedX, ReadModifyWrite)

	def(0x40, Rti, Special, Read)
	def(0x41, Eor, XIndexedIndirect, Read)
	def(0x45, Eor, ZeroPage, Read)
	def(0x46, Lsr, ZeroPage, ReadModifyWrite)
	def(0x48, Pha, Special, Read)
	def(0x49, Eor, Immediate, Read)
	def(0x4a, Lsr, Accumulator, ReadModifyWrite)
	def(0x4c, Jmp, Absolute, Read)
	def(0x4d, Eor, Absolute, Read)
	def(0x4e, Lsr, Absolute, ReadModifyWrite)

	def(0x50, Bvc, Relative, Read)
	def(0x51, Eor, IndirectIndexedY, Read)
	def(0x55, Eor, ZeroPageIndexedX, Read)
	def(0x56, Lsr, ZeroPageIndexedX, ReadModifyWrite)
	def(0x58, Cli, Implied, Read)
	def(0x59, Eor, AbsoluteIndexedY, Read)
	def(0x5d, Eor, AbsoluteIndexedX, Read)
	def(0x5e, Lsr, AbsoluteIndexedX, ReadModifyWrite)

	def(0x60, Rts, Special, Read)
	def(0x61, Adc, XIndexedIndirect, Read)
	def(0x65, Adc, ZeroPage, Read)
	def(0x66, Ror, ZeroPage, ReadModifyWrite)
	def(0x68, Pla, Special, Read)
	def(0x69, Adc, Immediate, Read)
	def(0x6a, Ror, Accumulator, ReadModifyWrite)
	def(0x6c, Jmp, Indirect, Read)
	def(0x6d, Adc, Absolute, Read)
	def(0x6e, Ror, Absolute, ReadModifyWrite)

	def(0x70, Bvs, Relative, Read)
	def(0x71, Adc, IndirectIndexedY, Read)
	def(0x75, Adc, ZeroPageIndexedX, Read)
	def(0x76, Ror, ZeroPageIndexedX, ReadModifyWrite)
	def(0x78, Sei, Implied, Read)
	def(0x79, Adc, AbsoluteIndexedY, Read)
	def(0x7d, Adc, AbsoluteIndexedX, Read)
	def(0x7e, Ror, AbsoluteIndexedX, ReadModifyWrite)

	def(0x81, Sta, XIndexedIndirect, Write)
	def(0x84, Sty, ZeroPage, Write)
	def(0x85, Sta, ZeroPage, Write)
	def(0x86, Stx, ZeroPage, Write)
	def(0x88, Dey, Implied, Read)
	def(0x8a, Txa, Implied, Read)
	def(0x8c, Sty, Absolute, Write)
	def(0x8d, Sta, Absolute, Write)
	def(0x8e, Stx, Absolute, Write)

	def(0x90, Bcc, Relative, Read)
	def(0x91, Sta, IndirectIndexedY, Write)
	def(0x94, Sty, ZeroPageIndexedX, Write)
	def(0x95, Sta, ZeroPageIndexedX, Write)
	def(0x96, Stx, ZeroPageIndexedY, Write)
	def(0x98, Tya, Implied, Read)
	def(0x99, Sta, AbsoluteIndexedY, Write)
	def(0x9a, Txs, Implied, Read)
	def(0x9d, Sta, AbsoluteIndexedX, Write)

	def(0xa0, Ldy, Immediate, Read)
	def(0xa1, Lda, XIndexedIndirect, Read)
	def(0xa2, Ldx, Immediate, Read)
	def(0xa4, Ldy, ZeroPage, Read)
	def(0xa5, Lda, ZeroPage, Read)
	def(0xa6, Ldx, ZeroPage, Read)
	def(0xa8, Tay, Implied, Read)
	def(0xa9, Lda, Immediate, Read)
	def(0xaa, Tax, Implied, Read)
	def(0xac, Ldy, Absolute, Read)
	def(0xad, Lda, Absolute, Read)
	def(0xae, Ldx, Absolute, Read)

	def(0xb0, Bcs, Relative, Read)
	def(0xb1, Lda, IndirectIndexedY, Read)
	def(0xb4, Ldy, ZeroPageIndexedX, Read)
	def(0xb5, Lda, ZeroPageIndexedX, Read)
	def(0xb6, Ldx, ZeroPageIndexedY, Read)
	def(0xb8, Clv, Implied, Read)
	def(0xb9, Lda, AbsoluteIndexedY, Read)
	def(0xba, Tsx, Implied, Read)
	def(0xbc, Ldy, AbsoluteIndexedX, Read)
	def(0xbd, Lda, AbsoluteIndexedX, Read)
	def(0xbe, Ldx, AbsoluteIndexedY, Read)

	def(0xc0, Cpy, Immediate, Read)
	def(0xc1, Cmp, XIndexedIndirect, Read)
	def(0xc4, Cpy, ZeroPage, Read)
	def(0xc5, Cmp, ZeroPage, Read)
	def(0xc6, Dec, ZeroPage, ReadModifyWrite)
	def(0xc8, Iny, Implied, Read)
	def(0xc9, Cmp, Immediate, Read)
	def(0xca, Dex, Implied, Read)
	def(0xcc, Cpy, Absolute, Read)
	def(0xcd, Cmp, Absolute, Read)
	def(0xce, Dec, Absolute, ReadModifyWrite)

	def(0xd0, Bne, Relative, Read)
	def(0xd1, Cmp, IndirectIndexedY, Read)
	def(0xd5, Cmp, ZeroPageIndexedX, Read)
	def(0xd6, Dec, ZeroPageIndexedX, ReadModifyWrite)
	def(0xd8, Cld, Implied, Read)
	def(0xd9, Cmp, AbsoluteIndexedY, Read)
	def(0xdd, Cmp, AbsoluteIndexedX, Read)
	def(0xde, Dec, AbsoluteIndexedX, ReadModifyWrite)

	def(0xe0, Cpx, Immediate, Read)
	def(0xe1, Sbc, XIndexedIndirect, Read)
	def(0xe4, Cpx, ZeroPage, Read)
	def(0xe5, Sbc, ZeroPage, Read)
	def(0xe6, Inc, ZeroPage, ReadModifyWrite)
	def(0xe8, Inx, Implied, Read)
	def(0xe9, Sbc, Immediate, Read)
	def(0xea, Nop, Implied, Read)
	def(0xec, Cpx, Absolute, Read)
	def(0xed, Sbc, Absolute, Read)
	def(0xee, Inc, Absolute, ReadModifyWrite)

	def(0xf0, Beq, Relative, Read)
	def(0xf1, Sbc, IndirectIndexedY, Read)
	def(0xf5, Sbc, ZeroPageIndexedX, Read)
	def(0xf6, Inc, ZeroPageIndexedX, ReadModifyWrite)
	def(0xf8, Sed, Implied, Read)
	def(0xf9, Sbc, AbsoluteIndexedY, Read)
	def(0xfd, Sbc, AbsoluteIndexedX, Read)
	def(0xfe, Inc, AbsoluteIndexedX, ReadModifyWrite)
}

// decode returns the decoded Instruction for opcode and whether it is a
// documented (implemented) 6502 instruction.
func decode(opcode uint8) (Instruction, bool) {
	return decodeTable[opcode], decodeValid[opcode]
}
