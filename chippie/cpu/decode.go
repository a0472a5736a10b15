package cpu

// Kind is the decoded instruction type. The set is closed: a word that
// matches none of the patterns below is not an instruction.
type Kind uint8

const (
	ClearScreen Kind = iota // 00E0
	Return                  // 00EE
	Jump                    // 1NNN
	Call                    // 2NNN
	SkipEqualByte           // 3XNN
	SkipNotEqualByte        // 4XNN
	SkipEqualRegister       // 5XY0
	LoadByte                // 6XNN
	AddByte                 // 7XNN
	Move                    // 8XY0
	Or                      // 8XY1
	And                     // 8XY2
	Xor                     // 8XY3
	Add                     // 8XY4
	Sub                     // 8XY5
	ShiftRight              // 8XY6
	SubReverse              // 8XY7
	ShiftLeft               // 8XYE
	SkipNotEqualRegister    // 9XY0
	LoadIndex               // ANNN
	JumpOffset              // BNNN
	Random                  // CXNN
	Draw                    // DXYN
	SkipKeyPressed          // EX9E
	SkipKeyNotPressed       // EXA1
	LoadDelay               // FX07
	WaitKey                 // FX0A
	SetDelay                // FX15
	SetSound                // FX18
	AddIndex                // FX1E
	LoadFont                // FX29
	StoreBCD                // FX33
	StoreRegisters          // FX55
	LoadRegisters           // FX65
)

// Instruction is one decoded opcode with all operand fields extracted.
// Each instruction only reads the fields its encoding defines.
type Instruction struct {
	Kind Kind
	Word uint16 // raw opcode word
	X    uint8  // second nibble, register index
	Y    uint8  // third nibble, register index
	N    uint8  // low nibble
	NN   uint8  // low byte
	NNN  uint16 // low 12 bits, address
}

type pattern struct {
	mask  uint16
	value uint16
	kind  Kind
}

// patterns is indexed by the top nibble of the opcode word. Families with
// one layout carry a single entry; overloaded families (0x0, 0x8, 0xE,
// 0xF) sub-dispatch on the low byte or low nibble through the mask.
var patterns = [16][]pattern{
	0x0: {
		{0xFFFF, 0x00E0, ClearScreen},
		{0xFFFF, 0x00EE, Return},
	},
	0x1: {{0xF000, 0x1000, Jump}},
	0x2: {{0xF000, 0x2000, Call}},
	0x3: {{0xF000, 0x3000, SkipEqualByte}},
	0x4: {{0xF000, 0x4000, SkipNotEqualByte}},
	0x5: {{0xF00F, 0x5000, SkipEqualRegister}},
	0x6: {{0xF000, 0x6000, LoadByte}},
	0x7: {{0xF000, 0x7000, AddByte}},
	0x8: {
		{0xF00F, 0x8000, Move},
		{0xF00F, 0x8001, Or},
		{0xF00F, 0x8002, And},
		{0xF00F, 0x8003, Xor},
		{0xF00F, 0x8004, Add},
		{0xF00F, 0x8005, Sub},
		{0xF00F, 0x8006, ShiftRight},
		{0xF00F, 0x8007, SubReverse},
		{0xF00F, 0x800E, ShiftLeft},
	},
	0x9: {{0xF00F, 0x9000, SkipNotEqualRegister}},
	0xA: {{0xF000, 0xA000, LoadIndex}},
	0xB: {{0xF000, 0xB000, JumpOffset}},
	0xC: {{0xF000, 0xC000, Random}},
	0xD: {{0xF000, 0xD000, Draw}},
	0xE: {
		{0xF0FF, 0xE09E, SkipKeyPressed},
		{0xF0FF, 0xE0A1, SkipKeyNotPressed},
	},
	0xF: {
		{0xF0FF, 0xF007, LoadDelay},
		{0xF0FF, 0xF00A, WaitKey},
		{0xF0FF, 0xF015, SetDelay},
		{0xF0FF, 0xF018, SetSound},
		{0xF0FF, 0xF01E, AddIndex},
		{0xF0FF, 0xF029, LoadFont},
		{0xF0FF, 0xF033, StoreBCD},
		{0xF0FF, 0xF055, StoreRegisters},
		{0xF0FF, 0xF065, LoadRegisters},
	},
}

// Decode matches a raw opcode word against the instruction table.
// The second return value is false when the word encodes nothing.
func Decode(word uint16) (Instruction, bool) {
	for _, p := range patterns[word>>12] {
		if word&p.mask == p.value {
			return Instruction{
				Kind: p.kind,
				Word: word,
				X:    uint8(word >> 8 & 0x0F),
				Y:    uint8(word >> 4 & 0x0F),
				N:    uint8(word & 0x0F),
				NN:   uint8(word & 0xFF),
				NNN:  word & 0x0FFF,
			}, true
		}
	}

	return Instruction{}, false
}
