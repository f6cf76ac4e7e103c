package sensor

// MaxRaw is the largest code a 10-bit ADC conversion can produce.
const MaxRaw = 1023

// RawSample is an unscaled 10-bit ADC reading (0-1023).
type RawSample uint16

// Sensor is the sensing collaborator. ReadRaw blocks until a conversion
// completes and always returns a code in [0, MaxRaw].
type Sensor interface {
	ReadRaw() RawSample
}

// SensorFunc adapts a plain function to the Sensor interface.
type SensorFunc func() RawSample

// ReadRaw calls f.
func (f SensorFunc) ReadRaw() RawSample {
	return f()
}

var (
	_ Sensor = SensorFunc(nil)
	_ Sensor = (*Sequence)(nil)
	_ Sensor = (*Mock)(nil)
)
