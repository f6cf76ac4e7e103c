package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Wraps(t *testing.T) {
	seq := NewSequence(1, 2, 3)

	got := make([]RawSample, 0, 5)
	for range 5 {
		got = append(got, seq.ReadRaw())
	}

	assert.Equal(t, []RawSample{1, 2, 3, 1, 2}, got)
	assert.Equal(t, 5, seq.Reads())
}

func TestSequence_Empty(t *testing.T) {
	seq := NewSequence()
	assert.Equal(t, RawSample(0), seq.ReadRaw())
}

func TestMock_NoNoise(t *testing.T) {
	m := NewMock(767, 0)
	for range 10 {
		assert.Equal(t, RawSample(767), m.ReadRaw())
	}
}

func TestMock_RippleStaysInBand(t *testing.T) {
	m := NewMock(500, 4)
	for range 100 {
		v := m.ReadRaw()
		assert.GreaterOrEqual(t, int(v), 496)
		assert.LessOrEqual(t, int(v), 504)
	}
}

func TestMock_Clamps(t *testing.T) {
	tests := []struct {
		name string
		raw  RawSample
		min  RawSample
		max  RawSample
	}{
		{name: "bottom of range", raw: 0, min: 0, max: 8},
		{name: "top of range", raw: MaxRaw, min: MaxRaw - 8, max: MaxRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMock(tt.raw, 8)
			for range 50 {
				v := m.ReadRaw()
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestMock_SetRaw(t *testing.T) {
	m := NewMock(100, 0)
	m.SetRaw(900)
	assert.Equal(t, RawSample(900), m.ReadRaw())
}
