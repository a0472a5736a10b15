package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		desc string
		word uint16
		kind Kind
	}{
		{desc: "clear screen", word: 0x00E0, kind: ClearScreen},
		{desc: "return", word: 0x00EE, kind: Return},
		{desc: "jump", word: 0x1ABC, kind: Jump},
		{desc: "call", word: 0x2ABC, kind: Call},
		{desc: "skip equal byte", word: 0x3A12, kind: SkipEqualByte},
		{desc: "skip not equal byte", word: 0x4A12, kind: SkipNotEqualByte},
		{desc: "skip equal register", word: 0x5AB0, kind: SkipEqualRegister},
		{desc: "load byte", word: 0x6A12, kind: LoadByte},
		{desc: "add byte", word: 0x7A12, kind: AddByte},
		{desc: "move", word: 0x8AB0, kind: Move},
		{desc: "or", word: 0x8AB1, kind: Or},
		{desc: "and", word: 0x8AB2, kind: And},
		{desc: "xor", word: 0x8AB3, kind: Xor},
		{desc: "add", word: 0x8AB4, kind: Add},
		{desc: "sub", word: 0x8AB5, kind: Sub},
		{desc: "shift right", word: 0x8AB6, kind: ShiftRight},
		{desc: "sub reverse", word: 0x8AB7, kind: SubReverse},
		{desc: "shift left", word: 0x8ABE, kind: ShiftLeft},
		{desc: "skip not equal register", word: 0x9AB0, kind: SkipNotEqualRegister},
		{desc: "load index", word: 0xAABC, kind: LoadIndex},
		{desc: "jump offset", word: 0xBABC, kind: JumpOffset},
		{desc: "random", word: 0xCA12, kind: Random},
		{desc: "draw", word: 0xDAB5, kind: Draw},
		{desc: "skip key pressed", word: 0xEA9E, kind: SkipKeyPressed},
		{desc: "skip key not pressed", word: 0xEAA1, kind: SkipKeyNotPressed},
		{desc: "load delay", word: 0xFA07, kind: LoadDelay},
		{desc: "wait key", word: 0xFA0A, kind: WaitKey},
		{desc: "set delay", word: 0xFA15, kind: SetDelay},
		{desc: "set sound", word: 0xFA18, kind: SetSound},
		{desc: "add index", word: 0xFA1E, kind: AddIndex},
		{desc: "load font", word: 0xFA29, kind: LoadFont},
		{desc: "store bcd", word: 0xFA33, kind: StoreBCD},
		{desc: "store registers", word: 0xFA55, kind: StoreRegisters},
		{desc: "load registers", word: 0xFA65, kind: LoadRegisters},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			in, ok := Decode(tC.word)
			assert.True(t, ok)
			assert.Equal(t, tC.kind, in.Kind)
			assert.Equal(t, tC.word, in.Word)
		})
	}
}

func TestDecode_operandFields(t *testing.T) {
	in, ok := Decode(0xD12F)
	assert.True(t, ok)

	assert.Equal(t, Draw, in.Kind)
	assert.Equal(t, uint8(0x1), in.X)
	assert.Equal(t, uint8(0x2), in.Y)
	assert.Equal(t, uint8(0xF), in.N)
	assert.Equal(t, uint8(0x2F), in.NN)
	assert.Equal(t, uint16(0x12F), in.NNN)
}

func TestDecode_unknownWords(t *testing.T) {
	words := []uint16{
		0x0000, // family 0x0 without a recognized low byte
		0x00E1,
		0x0123,
		0x5AB1, // 5XY. requires a zero low nibble
		0x8AB8, // 8XY. sub-operations stop at 7, except E
		0x8ABF,
		0x9AB5,
		0xEA00,
		0xEA9F,
		0xFA00,
		0xFA66,
		0xFFFF,
	}

	for _, word := range words {
		_, ok := Decode(word)
		assert.False(t, ok, "0x%04X should not decode", word)
	}
}
