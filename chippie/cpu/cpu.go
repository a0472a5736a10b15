package cpu

import (
	"math/rand"
	"time"

	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/memory"
	"github.com/valerio/go-chippie/chippie/timer"
	"github.com/valerio/go-chippie/chippie/video"
)

const (
	// stackDepth is the maximum number of nested calls.
	stackDepth = 16
	// flagRegister is VF, repurposed by arithmetic, shift and draw
	// instructions to report carry, borrow or collision.
	flagRegister = 0xF
)

// TraceFunc is invoked after each fetch with the instruction address and
// the raw opcode word, before the instruction executes.
type TraceFunc func(addr, opcode uint16)

// CPU holds the full execution state: registers, stack and the wait-for-key
// flag, plus references to the components instructions operate on.
type CPU struct {
	// registers
	v     [16]uint8
	i     uint16
	pc    uint16
	sp    uint8
	stack [stackDepth]uint16

	// metadata
	waitingForKey bool
	keyRegister   uint8
	cycles        uint64
	rng           *rand.Rand
	trace         TraceFunc

	memory *memory.Memory
	fb     *video.FrameBuffer
	keypad *input.Keypad
	timers *timer.Timers
}

// New returns a CPU ready to execute from the program start address.
// The random source is time-seeded; use SetSeed for reproducible runs.
func New(mem *memory.Memory, fb *video.FrameBuffer, keypad *input.Keypad, timers *timer.Timers) *CPU {
	return &CPU{
		pc:     memory.ProgramStart,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		memory: mem,
		fb:     fb,
		keypad: keypad,
		timers: timers,
	}
}

// Step runs one fetch-decode-execute round. While the CPU waits for a key
// it does nothing and returns nil. A returned error means the cycle was
// aborted with no effect on machine state, the program counter included.
func (c *CPU) Step() error {
	if c.waitingForKey {
		return nil
	}

	word, err := c.memory.ReadWord(c.pc)
	if err != nil {
		return err
	}

	if c.trace != nil {
		c.trace(c.pc, word)
	}

	in, ok := Decode(word)
	if !ok {
		return UnknownOpcodeError{Opcode: word, Addr: c.pc}
	}

	c.pc += 2
	if err := c.execute(in); err != nil {
		c.pc -= 2
		return err
	}

	c.cycles++
	return nil
}

// SetKey records a key transition. A key-down transition while the CPU is
// waiting for a key stores the key number in the target register, advances
// past the wait instruction and resumes execution; key-up transitions only
// update the pad.
func (c *CPU) SetKey(key input.Key, pressed bool) {
	c.keypad.Set(key, pressed)

	if pressed && c.waitingForKey && key < input.KeyCount {
		c.v[c.keyRegister] = uint8(key)
		c.pc += 2
		c.waitingForKey = false
	}
}

// SetSeed replaces the random source with a seeded one.
func (c *CPU) SetSeed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// SetTrace installs a per-instruction trace callback. Pass nil to disable.
func (c *CPU) SetTrace(trace TraceFunc) {
	c.trace = trace
}

// Reset restores the CPU to its initial state. Memory and the other
// components are reset by their owner.
func (c *CPU) Reset() {
	c.v = [16]uint8{}
	c.i = 0
	c.pc = memory.ProgramStart
	c.sp = 0
	c.stack = [stackDepth]uint16{}
	c.waitingForKey = false
	c.keyRegister = 0
	c.cycles = 0
}

func (c *CPU) pushStack(addr uint16) error {
	if c.sp >= stackDepth {
		return ErrStackOverflow
	}

	c.stack[c.sp] = addr
	c.sp++
	return nil
}

func (c *CPU) popStack() (uint16, error) {
	if c.sp == 0 {
		return 0, ErrStackUnderflow
	}

	c.sp--
	return c.stack[c.sp], nil
}

// Debug getter methods

func (c *CPU) GetV(index uint8) uint8 { return c.v[index&0x0F] }

func (c *CPU) GetI() uint16 { return c.i }

func (c *CPU) GetPC() uint16 { return c.pc }

func (c *CPU) GetSP() uint8 { return c.sp }

func (c *CPU) GetCycles() uint64 { return c.cycles }

// IsWaitingForKey reports whether the CPU is suspended on the
// wait-for-key instruction.
func (c *CPU) IsWaitingForKey() bool { return c.waitingForKey }
