package thermometer

import (
	"errors"
	"time"

	"github.com/itohio/tinytemp/pkg/convert"
	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/sensor"
)

// Defaults of the reference build.
const (
	DefaultSamples  = 25
	DefaultMaxTempF = 80
	DefaultWatchdog = 8 * time.Second
)

// maxSamples keeps the uint32 accumulator of the sampler from overflowing.
const maxSamples = (1<<32 - 1) / sensor.MaxRaw

// maxVRef is the highest reference an AVR ADC accepts (VCC max). It also keeps
// hundredths of the hottest reading well inside int32.
const maxVRef = 5.5

var (
	ErrSamples  = errors.New("sample count must be between 1 and 4198404")
	ErrVRef     = errors.New("reference voltage must be in (0, 5.5] V")
	ErrWatchdog = errors.New("watchdog period must be positive")
)

// Settings configures one measurement cycle. It is built once at startup
// and handed to New.
type Settings struct {
	Samples         int           // ADC readings averaged per cycle
	VRef            float32       // ADC reference voltage (V)
	MaxTempF        float32       // alert threshold (°F), strictly greater triggers
	UnitColumn      uint8         // pixel column of the unit labels
	ZeroPadFraction bool          // render 3.05 as "3.05" instead of "3.5"
	Watchdog        time.Duration // sleep before the watchdog resets the device
}

// DefaultSettings returns the settings of the reference build.
func DefaultSettings() Settings {
	return Settings{
		Samples:    DefaultSamples,
		VRef:       convert.DefaultVRef,
		MaxTempF:   DefaultMaxTempF,
		UnitColumn: display.DefaultUnitColumn,
		Watchdog:   DefaultWatchdog,
	}
}

// Validate checks that the settings describe a cycle that can run.
func (s Settings) Validate() error {
	if s.Samples <= 0 || s.Samples > maxSamples {
		return ErrSamples
	}
	if !(s.VRef > 0 && s.VRef <= maxVRef) {
		return ErrVRef
	}
	if s.Watchdog <= 0 {
		return ErrWatchdog
	}
	return nil
}
