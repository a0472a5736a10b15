package input

// Key identifies one of the sixteen keys on the hex keypad.
type Key uint8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// KeyCount is the number of keys on the pad.
const KeyCount = 16

// Keypad holds the pressed state of the sixteen keys. It is written by an
// input frontend on press/release transitions and read by key instructions.
type Keypad struct {
	state [KeyCount]bool
}

// NewKeypad creates a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Set records a press or release transition. Keys outside the pad are
// ignored; validating them is the frontend's job.
func (k *Keypad) Set(key Key, pressed bool) {
	if key >= KeyCount {
		return
	}

	k.state[key] = pressed
}

// Pressed reports whether a key is currently held down.
func (k *Keypad) Pressed(key Key) bool {
	if key >= KeyCount {
		return false
	}

	return k.state[key]
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.state = [KeyCount]bool{}
}
