// Package timer implements the delay and sound countdown timers.
//
// Both timers decay at a fixed 60 Hz cadence that is driven externally;
// the package only exposes the tick operation and register access. The
// sound timer being nonzero is the cue for a frontend to play a tone.
package timer

// Timers holds the delay and sound countdown registers.
type Timers struct {
	delay uint8
	sound uint8
}

// New creates both timers at zero.
func New() *Timers {
	return &Timers{}
}

// Tick decrements each timer by one if it is nonzero. Timers never go
// below zero.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the current delay timer value.
func (t *Timers) Delay() uint8 {
	return t.delay
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value uint8) {
	t.delay = value
}

// Sound returns the current sound timer value.
func (t *Timers) Sound() uint8 {
	return t.sound
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value uint8) {
	t.sound = value
}

// SoundActive reports whether a tone should currently be playing.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}

// Reset zeroes both timers.
func (t *Timers) Reset() {
	t.delay = 0
	t.sound = 0
}
