// Package convert implements the TMP36 transfer function.
//
// The sensor outputs 10 mV/°C with a 500 mV offset. With the ADC referenced to
// vref volts over 1024 codes, one code is vref/1024 V, so
//
//	°C = raw * vref * 1000 / 1024 / 10 - 50 = raw * vref / 10.24 - 50
//
// All arithmetic is float32, matching the single-precision floats of the
// target MCU.
package convert

import "github.com/itohio/tinytemp/pkg/sensor"

// DefaultVRef is the internal 1.1 V bandgap reference of the ATmega328P.
const DefaultVRef float32 = 1.1

// Celsius converts an averaged raw reading to degrees Celsius.
func Celsius(raw sensor.RawSample, vref float32) float32 {
	return float32(raw)*vref/10.24 - 50
}

// Fahrenheit converts degrees Celsius to degrees Fahrenheit.
func Fahrenheit(celsius float32) float32 {
	return celsius*9/5 + 32
}

// Reading holds both scales derived from one averaged sample.
type Reading struct {
	Raw        sensor.RawSample
	Celsius    float32
	Fahrenheit float32
}

// Convert derives both temperature scales from raw.
func Convert(raw sensor.RawSample, vref float32) Reading {
	c := Celsius(raw, vref)
	return Reading{
		Raw:        raw,
		Celsius:    c,
		Fahrenheit: Fahrenheit(c),
	}
}
