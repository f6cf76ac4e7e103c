package sensor

import (
	"sync"

	"github.com/chewxy/math32"
)

// Sequence replays a fixed list of readings, wrapping around at the end.
type Sequence struct {
	mu     sync.Mutex
	values []RawSample
	pos    int
	reads  int
}

// NewSequence creates a Sequence sensor. An empty list always reads 0.
func NewSequence(values ...RawSample) *Sequence {
	return &Sequence{values: values}
}

// ReadRaw returns the next value in the sequence.
func (s *Sequence) ReadRaw() RawSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Reads returns how many times ReadRaw has been called.
func (s *Sequence) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Mock simulates a TMP36 sitting at a steady temperature with a small,
// deterministic ripple on top, the way a real ADC input wanders.
type Mock struct {
	mu    sync.Mutex
	raw   float32
	noise float32
	n     int
}

// NewMock creates a Mock centred on raw with a ripple of +/- noise codes.
func NewMock(raw RawSample, noise float32) *Mock {
	return &Mock{
		raw:   float32(raw),
		noise: noise,
	}
}

// SetRaw moves the simulated steady-state reading.
func (m *Mock) SetRaw(raw RawSample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = float32(raw)
}

// ReadRaw returns the next simulated reading, clamped to the ADC range.
func (m *Mock) ReadRaw() RawSample {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Two incommensurate tones give a ripple that averages out over a batch.
	t := float32(m.n)
	m.n++
	ripple := (math32.Sin(t*0.9) + math32.Cos(t*1.3)) * m.noise * 0.5

	v := math32.Floor(m.raw + ripple + 0.5)
	if v < 0 {
		v = 0
	} else if v > MaxRaw {
		v = MaxRaw
	}
	return RawSample(v)
}
