package cpu

import (
	"github.com/valerio/go-chippie/chippie/bit"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/memory"
	"github.com/valerio/go-chippie/chippie/video"
)

// execute runs a single decoded instruction. The program counter has
// already been advanced past it; skip instructions advance it further,
// jumps and calls replace it. Instructions that can fail validate their
// memory span or stack slot before mutating anything.
func (c *CPU) execute(in Instruction) error {
	switch in.Kind {
	case ClearScreen:
		c.fb.Clear()
	case Return:
		addr, err := c.popStack()
		if err != nil {
			return err
		}
		c.pc = addr
	case Jump:
		c.pc = in.NNN
	case Call:
		if err := c.pushStack(c.pc); err != nil {
			return err
		}
		c.pc = in.NNN
	case SkipEqualByte:
		c.skipIf(c.v[in.X] == in.NN)
	case SkipNotEqualByte:
		c.skipIf(c.v[in.X] != in.NN)
	case SkipEqualRegister:
		c.skipIf(c.v[in.X] == c.v[in.Y])
	case LoadByte:
		c.v[in.X] = in.NN
	case AddByte:
		c.v[in.X] += in.NN
	case Move:
		c.v[in.X] = c.v[in.Y]
	case Or:
		c.v[in.X] |= c.v[in.Y]
	case And:
		c.v[in.X] &= c.v[in.Y]
	case Xor:
		c.v[in.X] ^= c.v[in.Y]
	case Add:
		result, carry := bit.CheckedAdd(c.v[in.X], c.v[in.Y])
		c.v[in.X] = result
		c.setFlag(carry)
	case Sub:
		result, borrow := bit.CheckedSub(c.v[in.X], c.v[in.Y])
		c.v[in.X] = result
		c.setFlag(!borrow)
	case ShiftRight:
		out := bit.GetBitValue(0, c.v[in.X])
		c.v[in.X] >>= 1
		c.v[flagRegister] = out
	case SubReverse:
		result, borrow := bit.CheckedSub(c.v[in.Y], c.v[in.X])
		c.v[in.X] = result
		c.setFlag(!borrow)
	case ShiftLeft:
		out := bit.GetBitValue(7, c.v[in.X])
		c.v[in.X] <<= 1
		c.v[flagRegister] = out
	case SkipNotEqualRegister:
		c.skipIf(c.v[in.X] != c.v[in.Y])
	case LoadIndex:
		c.i = in.NNN
	case JumpOffset:
		c.pc = in.NNN + uint16(c.v[0])
	case Random:
		c.v[in.X] = uint8(c.rng.Intn(256)) & in.NN
	case Draw:
		return c.draw(in)
	case SkipKeyPressed:
		c.skipIf(c.keypad.Pressed(input.Key(c.v[in.X] & 0x0F)))
	case SkipKeyNotPressed:
		c.skipIf(!c.keypad.Pressed(input.Key(c.v[in.X] & 0x0F)))
	case LoadDelay:
		c.v[in.X] = c.timers.Delay()
	case WaitKey:
		// Stay on this instruction until SetKey reports a key-down.
		c.waitingForKey = true
		c.keyRegister = in.X
		c.pc -= 2
	case SetDelay:
		c.timers.SetDelay(c.v[in.X])
	case SetSound:
		c.timers.SetSound(c.v[in.X])
	case AddIndex:
		c.i += uint16(c.v[in.X])
	case LoadFont:
		c.i = memory.FontAddress(c.v[in.X])
	case StoreBCD:
		value := c.v[in.X]
		return c.memory.WriteSpan(c.i, []byte{value / 100, value / 10 % 10, value % 10})
	case StoreRegisters:
		return c.memory.WriteSpan(c.i, c.v[:int(in.X)+1])
	case LoadRegisters:
		span, err := c.memory.ReadSpan(c.i, int(in.X)+1)
		if err != nil {
			return err
		}
		copy(c.v[:], span)
	default:
		return UnknownOpcodeError{Opcode: in.Word, Addr: c.pc - 2}
	}

	return nil
}

// skipIf advances the program counter past the next instruction when the
// condition holds.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

// setFlag sets VF to 1 when the condition holds, 0 otherwise. Results are
// written before flags, so the flag wins when VF is the destination.
func (c *CPU) setFlag(condition bool) {
	if condition {
		c.v[flagRegister] = 1
	} else {
		c.v[flagRegister] = 0
	}
}

// draw XORs an N byte tall sprite read from memory at I onto the display.
// Coordinates wrap at the edges. VF is written once after the full sprite:
// 1 if any pixel was turned off, 0 otherwise.
func (c *CPU) draw(in Instruction) error {
	sprite, err := c.memory.ReadSpan(c.i, int(in.N))
	if err != nil {
		return err
	}

	collision := false
	for row, line := range sprite {
		y := (int(c.v[in.Y]) + row) % video.FramebufferHeight
		for col := 0; col < 8; col++ {
			if !bit.IsSet(uint8(7-col), line) {
				continue
			}
			x := (int(c.v[in.X]) + col) % video.FramebufferWidth
			if c.fb.Flip(x, y) {
				collision = true
			}
		}
	}

	c.setFlag(collision)
	return nil
}
