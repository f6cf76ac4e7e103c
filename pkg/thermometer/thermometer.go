// Package thermometer runs the measurement cycle: sample the sensor,
// convert to both scales, draw the result and drive the alert indicator,
// then hand the device over to the watchdog.
package thermometer

import (
	"time"

	"github.com/itohio/tinytemp/pkg/convert"
	"github.com/itohio/tinytemp/pkg/display"
	"github.com/itohio/tinytemp/pkg/fixedpoint"
	"github.com/itohio/tinytemp/pkg/sensor"
)

// Indicator is the TOO HOT output (an LED on the board).
type Indicator interface {
	Set(active bool)
}

// IndicatorFunc adapts a function to the Indicator interface.
type IndicatorFunc func(active bool)

// Set calls f.
func (f IndicatorFunc) Set(active bool) {
	f(active)
}

// Power arms the watchdog and puts the device to sleep once a cycle is done.
// On hardware EnterLowPowerSleep never returns; the watchdog resets the MCU.
type Power interface {
	ArmWatchdog(d time.Duration)
	EnterLowPowerSleep()
}

// Reading is the outcome of one measurement cycle.
type Reading struct {
	convert.Reading
	TooHot bool
}

// Thermometer owns the collaborators of one measurement cycle.
type Thermometer struct {
	settings  Settings
	sampler   *sensor.Sampler
	composer  *display.Composer
	display   display.Display
	indicator Indicator

	callbacks []func(Reading)
}

// New creates a Thermometer. Settings are expected to be valid.
func New(settings Settings, s sensor.Sensor, d display.Display, indicator Indicator) *Thermometer {
	return &Thermometer{
		settings:  settings,
		sampler:   sensor.NewSampler(s),
		composer:  display.NewComposer(settings.UnitColumn, fixedpoint.Formatter{ZeroPad: settings.ZeroPadFraction}),
		display:   d,
		indicator: indicator,
	}
}

// Measure clears the display, samples, converts and draws one reading.
func (t *Thermometer) Measure() Reading {
	t.display.Clear()

	raw := t.sampler.Sample(t.settings.Samples)
	r := Reading{Reading: convert.Convert(raw, t.settings.VRef)}
	r.TooHot = display.TooHot(r.Fahrenheit, t.settings.MaxTempF)

	display.Draw(t.display, t.composer.Compose(r.Celsius, r.Fahrenheit, t.settings.MaxTempF))
	t.indicator.Set(r.TooHot)

	return r
}

// OnMeasure registers fn to be called by Run with each reading, before the
// device goes to sleep.
func (t *Thermometer) OnMeasure(fn func(Reading)) {
	t.callbacks = append(t.callbacks, fn)
}

// Run performs one measurement cycle and then sleeps under the watchdog.
// It returns only if p.EnterLowPowerSleep returns.
func (t *Thermometer) Run(p Power) Reading {
	r := t.Measure()
	for _, fn := range t.callbacks {
		fn(r)
	}
	p.ArmWatchdog(t.settings.Watchdog)
	p.EnterLowPowerSleep()
	return r
}
