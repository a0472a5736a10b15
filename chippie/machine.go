package chippie

import (
	"log/slog"
	"os"

	"github.com/valerio/go-chippie/chippie/cpu"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/memory"
	"github.com/valerio/go-chippie/chippie/timer"
	"github.com/valerio/go-chippie/chippie/timing"
	"github.com/valerio/go-chippie/chippie/video"
)

// Machine is the root struct and entry point for running the emulation.
// It owns every component and is driven externally: a frontend calls Step
// or RunFrame at its own pace, reports key transitions and samples the
// framebuffer whenever it renders.
type Machine struct {
	cpu    *cpu.CPU
	mem    *memory.Memory
	fb     *video.FrameBuffer
	keypad *input.Keypad
	timers *timer.Timers

	cyclesPerFrame int
	frames         uint64
	rom            []byte
}

// New creates a machine with no program loaded.
func New() *Machine {
	mem := memory.New()
	fb := video.NewFrameBuffer()
	keypad := input.NewKeypad()
	timers := timer.New()

	return &Machine{
		cpu:            cpu.New(mem, fb, keypad, timers),
		mem:            mem,
		fb:             fb,
		keypad:         keypad,
		timers:         timers,
		cyclesPerFrame: timing.DefaultCyclesPerFrame,
	}
}

// NewWithFile creates a machine and loads the ROM file at path into it.
func NewWithFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded ROM data", "path", path, "bytes", len(data))

	m := New()
	if err := m.LoadROM(data); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadROM resets the machine and copies a program into memory at the
// program start address. The machine keeps its own copy so a later Reset
// can reload it.
func (m *Machine) LoadROM(rom []byte) error {
	if len(rom) > memory.Size-memory.ProgramStart {
		return memory.ErrROMTooLarge
	}

	m.rom = append([]byte(nil), rom...)
	m.Reset()
	return nil
}

// Reset restores the machine to its initial state and reloads the held
// ROM. Without a ROM it resets to an empty program area.
func (m *Machine) Reset() {
	m.mem.Reset()
	m.fb.Clear()
	m.keypad.Reset()
	m.timers.Reset()
	m.cpu.Reset()
	m.frames = 0

	if m.rom != nil {
		// validated when it was first loaded
		_ = m.mem.LoadROM(m.rom)
	}
}

// Step executes a single fetch-decode-execute cycle. While the machine
// waits for a key it does nothing. Errors abort the cycle without any
// effect on machine state; the caller decides whether to halt or carry on.
func (m *Machine) Step() error {
	return m.cpu.Step()
}

// TickTimers decrements the delay and sound timers once. Callers drive
// this at 60 Hz, independent of the cycle rate.
func (m *Machine) TickTimers() {
	m.timers.Tick()
}

// RunFrame runs one frame's worth of cycles followed by one timer tick,
// which keeps the timers at their 60 Hz cadence when the caller renders
// at 60 frames per second. It stops at the first cycle error.
func (m *Machine) RunFrame() error {
	for i := 0; i < m.cyclesPerFrame; i++ {
		if err := m.cpu.Step(); err != nil {
			return err
		}
	}

	m.timers.Tick()
	m.frames++
	return nil
}

// SetCyclesPerFrame adjusts the emulation speed for RunFrame callers.
// Values below one are ignored.
func (m *Machine) SetCyclesPerFrame(cycles int) {
	if cycles > 0 {
		m.cyclesPerFrame = cycles
	}
}

// SetKey records a key press or release transition. A press also
// satisfies a pending wait-for-key instruction.
func (m *Machine) SetKey(key input.Key, pressed bool) {
	m.cpu.SetKey(key, pressed)
}

// Framebuffer returns the live display buffer for renderers to sample.
func (m *Machine) Framebuffer() *video.FrameBuffer {
	return m.fb
}

// DisplaySnapshot returns an independent copy of the pixel states.
func (m *Machine) DisplaySnapshot() []bool {
	return m.fb.Snapshot()
}

// IsWaitingForKey reports whether execution is suspended on the
// wait-for-key instruction.
func (m *Machine) IsWaitingForKey() bool {
	return m.cpu.IsWaitingForKey()
}

// SoundActive reports whether a tone should currently be playing.
func (m *Machine) SoundActive() bool {
	return m.timers.SoundActive()
}

// SetSeed makes the random instruction reproducible.
func (m *Machine) SetSeed(seed int64) {
	m.cpu.SetSeed(seed)
}

// SetTrace installs a per-instruction trace callback. Pass nil to disable.
func (m *Machine) SetTrace(trace cpu.TraceFunc) {
	m.cpu.SetTrace(trace)
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.timers.Delay()
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.timers.Sound()
}

// Debug getter methods

func (m *Machine) GetPC() uint16 { return m.cpu.GetPC() }

func (m *Machine) GetI() uint16 { return m.cpu.GetI() }

func (m *Machine) GetV(index uint8) uint8 { return m.cpu.GetV(index) }

func (m *Machine) GetCycles() uint64 { return m.cpu.GetCycles() }

func (m *Machine) GetFrames() uint64 { return m.frames }
