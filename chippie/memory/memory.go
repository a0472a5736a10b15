package memory

import (
	"errors"
	"fmt"

	"github.com/valerio/go-chippie/chippie/bit"
)

const (
	// Size is the total amount of addressable memory.
	Size = 4096
	// ProgramStart is the address where loaded programs begin executing.
	// Everything below it is reserved for the interpreter and font data.
	ProgramStart = 0x200
)

// ErrROMTooLarge is returned when a program does not fit into the
// memory available above ProgramStart.
var ErrROMTooLarge = errors.New("rom does not fit into program memory")

// OutOfBoundsError is returned when an access resolves outside of the
// addressable range. Address is the first offending address.
type OutOfBoundsError struct {
	Address uint16
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds memory access at 0x%04X", e.Address)
}

// Memory is the flat address space of the machine: font data in the
// interpreter area, program bytes from ProgramStart up.
type Memory struct {
	data [Size]byte
}

// New creates memory with the font loaded and everything else zeroed.
func New() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

// Reset zeroes all memory and reloads the font.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	m.loadFont()
}

func (m *Memory) loadFont() {
	copy(m.data[fontOffset:], fontData[:])
}

// LoadROM copies a program into memory at ProgramStart. A program that
// does not fit is rejected without a partial copy.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > Size-ProgramStart {
		return ErrROMTooLarge
	}

	copy(m.data[ProgramStart:], rom)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, OutOfBoundsError{Address: addr}
	}

	return m.data[addr], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(addr uint16, value byte) error {
	if int(addr) >= Size {
		return OutOfBoundsError{Address: addr}
	}

	m.data[addr] = value
	return nil
}

// ReadWord reads two consecutive bytes as a big-endian 16 bit word.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if err := m.checkSpan(addr, 2); err != nil {
		return 0, err
	}

	return bit.Combine(m.data[addr], m.data[addr+1]), nil
}

// ReadSpan returns a copy of n consecutive bytes starting at addr.
// The whole span is validated before anything is read.
func (m *Memory) ReadSpan(addr uint16, n int) ([]byte, error) {
	if err := m.checkSpan(addr, n); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, m.data[addr:int(addr)+n])
	return out, nil
}

// WriteSpan copies data into memory starting at addr. The whole span is
// validated first, so a failed write has no partial effect.
func (m *Memory) WriteSpan(addr uint16, data []byte) error {
	if err := m.checkSpan(addr, len(data)); err != nil {
		return err
	}

	copy(m.data[addr:], data)
	return nil
}

func (m *Memory) checkSpan(addr uint16, n int) error {
	if int(addr) >= Size {
		return OutOfBoundsError{Address: addr}
	}
	if int(addr)+n > Size {
		return OutOfBoundsError{Address: Size}
	}

	return nil
}
