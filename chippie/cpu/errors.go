package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned by a call instruction when the stack
	// already holds the maximum number of return addresses.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned by a return instruction when the
	// stack is empty.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// UnknownOpcodeError reports a fetched word that matches no instruction.
// The program counter is left pointing at the word.
type UnknownOpcodeError struct {
	Opcode uint16
	Addr   uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at 0x%04X", e.Opcode, e.Addr)
}
