package chip8

import (
	"fmt"
)

// Opcode is one big-endian 16-bit instruction word.
type Opcode uint16

// makeNNN packs a 12-bit address into the low bits of an opcode word.
func makeNNN(hi uint16, addr uint16) Opcode {
	return Opcode((hi << 12) | (addr & 0xfff))
}

// makeXNN packs a register nibble and an 8-bit immediate.
func makeXNN(hi uint16, x Register, nn uint8) Opcode {
	return Opcode((hi << 12) | (uint16(x&0xf) << 8) | uint16(nn))
}

// makeXYN packs two register nibbles and a trailing nibble.
func makeXYN(hi uint16, x, y Register, n uint8) Opcode {
	return Opcode((hi << 12) | (uint16(x&0xf) << 8) | (uint16(y&0xf) << 4) | uint16(n&0xf))
}

// makeXKK packs a register nibble over a fixed low byte.
func makeXKK(hi uint16, x Register, kk uint8) Opcode {
	return Opcode((hi << 12) | (uint16(x&0xf) << 8) | uint16(kk))
}

// MakeCls creates the clear-screen instruction (00E0).
func MakeCls() Opcode { return 0x00e0 }

// MakeRet creates the subroutine-return instruction (00EE).
func MakeRet() Opcode { return 0x00ee }

// MakeJmp creates an absolute jump (1NNN).
func MakeJmp(addr uint16) Opcode { return makeNNN(0x1, addr) }

// MakeCall creates a subroutine call (2NNN).
func MakeCall(addr uint16) Opcode { return makeNNN(0x2, addr) }

// MakeSkipEqImm creates a skip-if-equal against an immediate (3XNN).
func MakeSkipEqImm(x Register, nn uint8) Opcode { return makeXNN(0x3, x, nn) }

// MakeSkipNeImm creates a skip-if-not-equal against an immediate (4XNN).
func MakeSkipNeImm(x Register, nn uint8) Opcode { return makeXNN(0x4, x, nn) }

// MakeSkipEqReg creates a skip-if-equal between two registers (5XY0).
func MakeSkipEqReg(x, y Register) Opcode { return makeXYN(0x5, x, y, 0x0) }

// MakeMovImm creates a register load from an immediate (6XNN).
func MakeMovImm(x Register, nn uint8) Opcode { return makeXNN(0x6, x, nn) }

// MakeAddImm creates a register add of an immediate (7XNN).
func MakeAddImm(x Register, nn uint8) Opcode { return makeXNN(0x7, x, nn) }

// MakeMovReg creates a register-to-register move (8XY0).
func MakeMovReg(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x0) }

// MakeOr creates a bitwise OR of two registers (8XY1).
func MakeOr(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x1) }

// MakeAnd creates a bitwise AND of two registers (8XY2).
func MakeAnd(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x2) }

// MakeXor creates a bitwise XOR of two registers (8XY3).
func MakeXor(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x3) }

// MakeAddReg creates a register-to-register add (8XY4).
func MakeAddReg(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x4) }

// MakeSub creates a register subtract, VX = VX - VY (8XY5).
func MakeSub(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x5) }

// MakeShr creates a shift right by one (8X06).
func MakeShr(x Register) Opcode { return makeXYN(0x8, x, 0x0, 0x6) }

// MakeSubn creates a reversed subtract, VX = VY - VX (8XY7).
func MakeSubn(x, y Register) Opcode { return makeXYN(0x8, x, y, 0x7) }

// MakeShl creates a shift left by one (8X0E).
func MakeShl(x Register) Opcode { return makeXYN(0x8, x, 0x0, 0xe) }

// MakeSkipNeReg creates a skip-if-not-equal between two registers (9XY0).
func MakeSkipNeReg(x, y Register) Opcode { return makeXYN(0x9, x, y, 0x0) }

// MakeMovIndex creates an index register load (ANNN).
func MakeMovIndex(addr uint16) Opcode { return makeNNN(0xa, addr) }

// MakeJmpV0 creates a computed jump to V0 plus an address (BNNN).
func MakeJmpV0(addr uint16) Opcode { return makeNNN(0xb, addr) }

// MakeRand creates a masked random number load (CXNN).
func MakeRand(x Register, nn uint8) Opcode { return makeXNN(0xc, x, nn) }

// MakeDraw creates a sprite draw of n rows at (VX, VY) (DXYN).
func MakeDraw(x, y Register, n uint8) Opcode { return makeXYN(0xd, x, y, n) }

// MakeSkipKeyDown creates a skip-if-key-pressed (EX9E).
func MakeSkipKeyDown(x Register) Opcode { return makeXKK(0xe, x, 0x9e) }

// MakeSkipKeyUp creates a skip-if-key-released (EXA1).
func MakeSkipKeyUp(x Register) Opcode { return makeXKK(0xe, x, 0xa1) }

// MakeGetDelay creates a delay timer read (FX07).
func MakeGetDelay(x Register) Opcode { return makeXKK(0xf, x, 0x07) }

// MakeWaitKey creates a blocking key wait (FX0A).
func MakeWaitKey(x Register) Opcode { return makeXKK(0xf, x, 0x0a) }

// MakeSetDelay creates a delay timer write (FX15).
func MakeSetDelay(x Register) Opcode { return makeXKK(0xf, x, 0x15) }

// MakeSetSound creates a sound timer write (FX18).
func MakeSetSound(x Register) Opcode { return makeXKK(0xf, x, 0x18) }

// MakeAddIndex creates an index register add (FX1E).
func MakeAddIndex(x Register) Opcode { return makeXKK(0xf, x, 0x1e) }

// MakeChar creates an index load of the builtin hex glyph for VX (FX29).
func MakeChar(x Register) Opcode { return makeXKK(0xf, x, 0x29) }

// MakeBcd creates a binary-coded-decimal store of VX (FX33).
func MakeBcd(x Register) Opcode { return makeXKK(0xf, x, 0x33) }

// MakeRegDump creates a register dump of V0-VX to memory at I (FX55).
func MakeRegDump(x Register) Opcode { return makeXKK(0xf, x, 0x55) }

// MakeRegLoad creates a register load of V0-VX from memory at I (FX65).
func MakeRegLoad(x Register) Opcode { return makeXKK(0xf, x, 0x65) }

// FromBytes assembles an opcode word from its big-endian byte pair.
func FromBytes(hi, lo byte) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

// Bytes returns the big-endian byte pair of the opcode word.
func (op Opcode) Bytes() (hi, lo byte) {
	return byte(op >> 8), byte(op)
}

// Hi returns the top nibble, which selects the instruction group.
func (op Opcode) Hi() uint8 { return uint8(op >> 12) }

// X returns the first register field.
func (op Opcode) X() Register { return Register((op >> 8) & 0xf) }

// Y returns the second register field.
func (op Opcode) Y() Register { return Register((op >> 4) & 0xf) }

// N returns the trailing nibble field.
func (op Opcode) N() uint8 { return uint8(op & 0xf) }

// NN returns the low byte field.
func (op Opcode) NN() uint8 { return uint8(op & 0xff) }

// NNN returns the 12-bit address field.
func (op Opcode) NNN() uint16 { return uint16(op & 0xfff) }

// String returns the assembly language representation of the opcode word.
func (op Opcode) String() string {
	switch op.Hi() {
	case 0x0:
		switch op {
		case 0x00e0:
			return "cls"
		case 0x00ee:
			return "ret"
		}
	case 0x1:
		return fmt.Sprintf("jmp $%03X", op.NNN())
	case 0x2:
		return fmt.Sprintf("call $%03X", op.NNN())
	case 0x3:
		return fmt.Sprintf("skip.eq %v, #%d", op.X(), op.NN())
	case 0x4:
		return fmt.Sprintf("skip.ne %v, #%d", op.X(), op.NN())
	case 0x5:
		if op.N() == 0x0 {
			return fmt.Sprintf("skip.eq %v, %v", op.X(), op.Y())
		}
	case 0x6:
		return fmt.Sprintf("mov %v, #%d", op.X(), op.NN())
	case 0x7:
		return fmt.Sprintf("add %v, #%d", op.X(), op.NN())
	case 0x8:
		names := map[uint8]string{
			0x0: "mov", 0x1: "or", 0x2: "and", 0x3: "xor",
			0x4: "add", 0x5: "sub", 0x7: "subn",
		}
		switch op.N() {
		case 0x6:
			return fmt.Sprintf("shr %v", op.X())
		case 0xe:
			return fmt.Sprintf("shl %v", op.X())
		default:
			if name, ok := names[op.N()]; ok {
				return fmt.Sprintf("%v %v, %v", name, op.X(), op.Y())
			}
		}
	case 0x9:
		if op.N() == 0x0 {
			return fmt.Sprintf("skip.ne %v, %v", op.X(), op.Y())
		}
	case 0xa:
		return fmt.Sprintf("mov I, $%03X", op.NNN())
	case 0xb:
		return fmt.Sprintf("jpc $%03X", op.NNN())
	case 0xc:
		return fmt.Sprintf("rand %v, #%d", op.X(), op.NN())
	case 0xd:
		return fmt.Sprintf("draw %v, %v, #%d", op.X(), op.Y(), op.N())
	case 0xe:
		switch op.NN() {
		case 0x9e:
			return fmt.Sprintf("skip.kd %v", op.X())
		case 0xa1:
			return fmt.Sprintf("skip.ku %v", op.X())
		}
	case 0xf:
		names := map[uint8]string{
			0x07: "gdl", 0x0a: "key", 0x15: "sdl", 0x18: "snd",
			0x1e: "add I,", 0x29: "sch", 0x33: "bcd", 0x55: "rdp", 0x65: "rld",
		}
		if name, ok := names[op.NN()]; ok {
			return fmt.Sprintf("%v %v", name, op.X())
		}
	}

	return fmt.Sprintf("dw $%04X", uint16(op))
}
