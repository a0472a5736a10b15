package timing

import "time"

// Limiter controls frame pacing for frontends.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}

func (n *noOpLimiter) Reset() {}

// Machine timing constants. The timers decay at a fixed 60 Hz; the CPU
// clock rate is not pinned by the hardware, 600 Hz is a comfortable
// default for most programs.
const (
	TimerRate        = 60
	DefaultClockRate = 600

	// DefaultCyclesPerFrame is the cycle budget per rendered frame for
	// frontends running at TimerRate frames per second.
	DefaultCyclesPerFrame = DefaultClockRate / TimerRate
)

// CyclesPerFrame converts a CPU clock rate into a per-frame cycle budget
// for frontends pacing at TimerRate frames per second. Rates below one
// cycle per frame clamp to one.
func CyclesPerFrame(clockRate int) int {
	cycles := clockRate / TimerRate
	if cycles < 1 {
		return 1
	}

	return cycles
}

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Second / TimerRate
}
