package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimers_tickDecrements(t *testing.T) {
	tm := New()
	tm.SetDelay(3)
	tm.SetSound(1)

	tm.Tick()

	assert.Equal(t, uint8(2), tm.Delay())
	assert.Equal(t, uint8(0), tm.Sound())
}

func TestTimers_neverBelowZero(t *testing.T) {
	tm := New()
	tm.SetDelay(3)

	for i := 0; i < 5; i++ {
		tm.Tick()
	}

	assert.Equal(t, uint8(0), tm.Delay())
	assert.Equal(t, uint8(0), tm.Sound())
}

func TestTimers_soundActive(t *testing.T) {
	tm := New()
	assert.False(t, tm.SoundActive())

	tm.SetSound(2)
	assert.True(t, tm.SoundActive())

	tm.Tick()
	assert.True(t, tm.SoundActive())

	tm.Tick()
	assert.False(t, tm.SoundActive())
}

func TestTimers_reset(t *testing.T) {
	tm := New()
	tm.SetDelay(10)
	tm.SetSound(10)

	tm.Reset()

	assert.Equal(t, uint8(0), tm.Delay())
	assert.Equal(t, uint8(0), tm.Sound())
}
