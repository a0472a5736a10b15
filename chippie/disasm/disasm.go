// Package disasm turns opcode words into readable assembly text.
//
// Mnemonics and operand notation follow the conventional CHIP-8 assembly
// syntax (CLS, JP $NNN, LD VX, $NN, DRW VX, VY, $N and so on).
package disasm

import (
	"fmt"

	"github.com/valerio/go-chippie/chippie/cpu"
	"github.com/valerio/go-chippie/chippie/memory"
)

// Line is a single entry of a program listing: either one instruction or
// one raw data word that decodes to nothing.
type Line struct {
	Addr uint16
	Word uint16
	Text string
	Data bool
}

func (l Line) String() string {
	return fmt.Sprintf("0x%03X  %04X  %s", l.Addr, l.Word, l.Text)
}

// Disassemble formats a single opcode word. The second return value is
// false when the word encodes no instruction; the text is then a data
// directive carrying the raw word.
func Disassemble(word uint16) (string, bool) {
	in, ok := cpu.Decode(word)
	if !ok {
		return fmt.Sprintf(".dw $%04X", word), false
	}

	return format(in), true
}

// ListROM produces a listing of a program as it would sit in memory from
// the program start address, walking two bytes at a time. Words that
// decode to nothing are listed as data; a trailing odd byte is padded
// with zero. CHIP-8 programs interleave sprite data with code, so data
// lines in a listing are normal, not an error.
func ListROM(rom []byte) []Line {
	lines := make([]Line, 0, (len(rom)+1)/2)

	for offset := 0; offset < len(rom); offset += 2 {
		var low byte
		if offset+1 < len(rom) {
			low = rom[offset+1]
		}
		word := uint16(rom[offset])<<8 | uint16(low)

		text, ok := Disassemble(word)
		lines = append(lines, Line{
			Addr: memory.ProgramStart + uint16(offset),
			Word: word,
			Text: text,
			Data: !ok,
		})
	}

	return lines
}

func format(in cpu.Instruction) string {
	switch in.Kind {
	case cpu.ClearScreen:
		return "CLS"
	case cpu.Return:
		return "RET"
	case cpu.Jump:
		return fmt.Sprintf("JP $%03X", in.NNN)
	case cpu.Call:
		return fmt.Sprintf("CALL $%03X", in.NNN)
	case cpu.SkipEqualByte:
		return fmt.Sprintf("SE V%X, $%02X", in.X, in.NN)
	case cpu.SkipNotEqualByte:
		return fmt.Sprintf("SNE V%X, $%02X", in.X, in.NN)
	case cpu.SkipEqualRegister:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case cpu.LoadByte:
		return fmt.Sprintf("LD V%X, $%02X", in.X, in.NN)
	case cpu.AddByte:
		return fmt.Sprintf("ADD V%X, $%02X", in.X, in.NN)
	case cpu.Move:
		return fmt.Sprintf("LD V%X, V%X", in.X, in.Y)
	case cpu.Or:
		return fmt.Sprintf("OR V%X, V%X", in.X, in.Y)
	case cpu.And:
		return fmt.Sprintf("AND V%X, V%X", in.X, in.Y)
	case cpu.Xor:
		return fmt.Sprintf("XOR V%X, V%X", in.X, in.Y)
	case cpu.Add:
		return fmt.Sprintf("ADD V%X, V%X", in.X, in.Y)
	case cpu.Sub:
		return fmt.Sprintf("SUB V%X, V%X", in.X, in.Y)
	case cpu.ShiftRight:
		return fmt.Sprintf("SHR V%X", in.X)
	case cpu.SubReverse:
		return fmt.Sprintf("SUBN V%X, V%X", in.X, in.Y)
	case cpu.ShiftLeft:
		return fmt.Sprintf("SHL V%X", in.X)
	case cpu.SkipNotEqualRegister:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case cpu.LoadIndex:
		return fmt.Sprintf("LD I, $%03X", in.NNN)
	case cpu.JumpOffset:
		return fmt.Sprintf("JP V0, $%03X", in.NNN)
	case cpu.Random:
		return fmt.Sprintf("RND V%X, $%02X", in.X, in.NN)
	case cpu.Draw:
		return fmt.Sprintf("DRW V%X, V%X, $%X", in.X, in.Y, in.N)
	case cpu.SkipKeyPressed:
		return fmt.Sprintf("SKP V%X", in.X)
	case cpu.SkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", in.X)
	case cpu.LoadDelay:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case cpu.WaitKey:
		return fmt.Sprintf("LD V%X, K", in.X)
	case cpu.SetDelay:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case cpu.SetSound:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case cpu.AddIndex:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case cpu.LoadFont:
		return fmt.Sprintf("LD F, V%X", in.X)
	case cpu.StoreBCD:
		return fmt.Sprintf("LD B, V%X", in.X)
	case cpu.StoreRegisters:
		return fmt.Sprintf("LD [I], V%X", in.X)
	case cpu.LoadRegisters:
		return fmt.Sprintf("LD V%X, [I]", in.X)
	}

	return fmt.Sprintf(".dw $%04X", in.Word)
}
