package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_loadsFont(t *testing.T) {
	m := New()

	first, err := m.Read(fontOffset)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xF0), first)

	last, err := m.Read(fontOffset + 79)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), last)

	after, err := m.Read(fontOffset + 80)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), after)
}

func TestFontAddress(t *testing.T) {
	testCases := []struct {
		desc  string
		digit uint8
		want  uint16
	}{
		{desc: "digit 0", digit: 0x0, want: 0},
		{desc: "digit 1", digit: 0x1, want: 5},
		{desc: "digit F", digit: 0xF, want: 75},
		{desc: "only low nibble used", digit: 0xAF, want: 75},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, FontAddress(tC.digit))
		})
	}
}

func TestLoadROM(t *testing.T) {
	t.Run("copies program at start address", func(t *testing.T) {
		m := New()
		err := m.LoadROM([]byte{0x60, 0x20, 0x70, 0x10})
		assert.NoError(t, err)

		b, err := m.Read(ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x60), b)

		b, err = m.Read(ProgramStart + 3)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x10), b)
	})

	t.Run("accepts a program filling all available memory", func(t *testing.T) {
		m := New()
		rom := make([]byte, Size-ProgramStart)
		rom[len(rom)-1] = 0xAB

		err := m.LoadROM(rom)
		assert.NoError(t, err)

		b, err := m.Read(Size - 1)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0xAB), b)
	})

	t.Run("rejects an oversized program without partial copy", func(t *testing.T) {
		m := New()
		rom := make([]byte, Size-ProgramStart+1)
		for i := range rom {
			rom[i] = 0xFF
		}

		err := m.LoadROM(rom)
		assert.ErrorIs(t, err, ErrROMTooLarge)

		b, err := m.Read(ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0), b)
	})
}

func TestReadWrite_bounds(t *testing.T) {
	m := New()

	assert.NoError(t, m.Write(Size-1, 0x42))
	b, err := m.Read(Size - 1)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), b)

	err = m.Write(Size, 0x42)
	var oob OutOfBoundsError
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, uint16(Size), oob.Address)

	_, err = m.Read(0xFFFF)
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, uint16(0xFFFF), oob.Address)
}

func TestReadWord(t *testing.T) {
	m := New()
	assert.NoError(t, m.Write(ProgramStart, 0x6A))
	assert.NoError(t, m.Write(ProgramStart+1, 0x02))

	w, err := m.ReadWord(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x6A02), w)

	_, err = m.ReadWord(Size - 1)
	var oob OutOfBoundsError
	assert.True(t, errors.As(err, &oob))
}

func TestSpans(t *testing.T) {
	t.Run("read returns an independent copy", func(t *testing.T) {
		m := New()
		assert.NoError(t, m.Write(0x300, 0x11))

		span, err := m.ReadSpan(0x300, 2)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x11, 0x00}, span)

		span[0] = 0xEE
		b, err := m.Read(0x300)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x11), b)
	})

	t.Run("write at the upper boundary", func(t *testing.T) {
		m := New()
		err := m.WriteSpan(Size-2, []byte{0x01, 0x02})
		assert.NoError(t, err)

		b, err := m.Read(Size - 1)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x02), b)
	})

	t.Run("write crossing the boundary has no effect", func(t *testing.T) {
		m := New()
		err := m.WriteSpan(Size-1, []byte{0x01, 0x02})

		var oob OutOfBoundsError
		assert.True(t, errors.As(err, &oob))
		assert.Equal(t, uint16(Size), oob.Address)

		b, err := m.Read(Size - 1)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0), b)
	})

	t.Run("read with base past the end reports the base", func(t *testing.T) {
		m := New()
		_, err := m.ReadSpan(0x2000, 4)

		var oob OutOfBoundsError
		assert.True(t, errors.As(err, &oob))
		assert.Equal(t, uint16(0x2000), oob.Address)
	})
}

func TestReset(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadROM([]byte{0xAA, 0xBB}))

	m.Reset()

	b, err := m.Read(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), b)

	f, err := m.Read(fontOffset)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xF0), f)
}
