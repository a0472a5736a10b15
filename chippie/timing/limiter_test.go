package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclesPerFrame(t *testing.T) {
	assert.Equal(t, 10, CyclesPerFrame(600))
	assert.Equal(t, 16, CyclesPerFrame(1000))
	assert.Equal(t, 1, CyclesPerFrame(30), "slow clocks clamp to one cycle per frame")
	assert.Equal(t, DefaultCyclesPerFrame, CyclesPerFrame(DefaultClockRate))
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, int64(16666666), FrameDuration().Nanoseconds())
}
