package sensor

// Sampler acquires a batch of readings from a Sensor and averages them.
type Sampler struct {
	sensor Sensor
}

// NewSampler creates a Sampler reading from s.
func NewSampler(s Sensor) *Sampler {
	return &Sampler{sensor: s}
}

// Sample reads the sensor exactly n times and returns the truncated integer
// average. n <= 0 reads nothing and returns 0.
func (s *Sampler) Sample(n int) RawSample {
	if n <= 0 {
		return 0
	}

	// uint32 holds n*MaxRaw for any n the settings allow.
	var sum uint32
	for range n {
		sum += uint32(s.sensor.ReadRaw())
	}

	return RawSample(sum / uint32(n))
}
