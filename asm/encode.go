package asm

import (
	"log"

	"github.com/ch8tools/ch8asm/chip8"
)

// Encode maps a fully resolved record to its binary unit(s): one big-endian
// opcode word per instruction, the raw bytes of a literal, nothing for a
// label definition. Operand ranges were validated at parse time.
func (rec *Record) Encode() []byte {
	switch rec.Mn {
	case MN_LABEL:
		return nil
	case MN_WORD:
		value := rec.Args[0].Value
		return []byte{byte(value >> 8), byte(value)}
	case MN_BYTE:
		return []byte{byte(rec.Args[0].Value)}
	}

	hi, lo := rec.opcode().Bytes()
	return []byte{hi, lo}
}

// opcode packs an instruction record into its opcode word.
func (rec *Record) opcode() chip8.Opcode {
	args := rec.Args
	reg := func(n int) chip8.Register { return args[n].Reg }
	addr := func(n int) uint16 { return args[n].Value }
	nn := func(n int) uint8 { return uint8(args[n].Value) }

	switch rec.Mn {
	case MN_CLS:
		return chip8.MakeCls()
	case MN_RET:
		return chip8.MakeRet()
	case MN_JMP:
		return chip8.MakeJmp(addr(0))
	case MN_CALL:
		return chip8.MakeCall(addr(0))
	case MN_JPC:
		return chip8.MakeJmpV0(addr(0))

	case MN_MOV:
		switch {
		case args[0].isIndex():
			return chip8.MakeMovIndex(addr(1))
		case args[1].isReg():
			return chip8.MakeMovReg(reg(0), reg(1))
		default:
			return chip8.MakeMovImm(reg(0), nn(1))
		}

	case MN_ADD:
		switch {
		case args[0].isIndex():
			return chip8.MakeAddIndex(reg(1))
		case args[1].isReg():
			return chip8.MakeAddReg(reg(0), reg(1))
		default:
			return chip8.MakeAddImm(reg(0), nn(1))
		}

	case MN_OR:
		return chip8.MakeOr(reg(0), reg(1))
	case MN_AND:
		return chip8.MakeAnd(reg(0), reg(1))
	case MN_XOR:
		return chip8.MakeXor(reg(0), reg(1))
	case MN_SUB:
		return chip8.MakeSub(reg(0), reg(1))
	case MN_SUBN:
		return chip8.MakeSubn(reg(0), reg(1))
	case MN_SHR:
		return chip8.MakeShr(reg(0))
	case MN_SHL:
		return chip8.MakeShl(reg(0))

	case MN_SKIP_EQ:
		if args[1].isReg() {
			return chip8.MakeSkipEqReg(reg(0), reg(1))
		}
		return chip8.MakeSkipEqImm(reg(0), nn(1))
	case MN_SKIP_NE:
		if args[1].isReg() {
			return chip8.MakeSkipNeReg(reg(0), reg(1))
		}
		return chip8.MakeSkipNeImm(reg(0), nn(1))
	case MN_SKIP_KD:
		return chip8.MakeSkipKeyDown(reg(0))
	case MN_SKIP_KU:
		return chip8.MakeSkipKeyUp(reg(0))

	case MN_RAND:
		return chip8.MakeRand(reg(0), nn(1))
	case MN_DRAW:
		return chip8.MakeDraw(reg(0), reg(1), nn(2))
	case MN_SCH:
		return chip8.MakeChar(reg(0))
	case MN_GDL:
		return chip8.MakeGetDelay(reg(0))
	case MN_KEY:
		return chip8.MakeWaitKey(reg(0))
	case MN_SDL:
		return chip8.MakeSetDelay(reg(0))
	case MN_SND:
		return chip8.MakeSetSound(reg(0))
	case MN_BCD:
		return chip8.MakeBcd(reg(0))
	case MN_RDP:
		return chip8.MakeRegDump(reg(0))
	case MN_RLD:
		return chip8.MakeRegLoad(reg(0))
	}

	log.Fatalf("unencodable record '%v' at line %d", rec.Word, rec.Line)
	return 0
}
