//go:build tinygo

package main

import "machine"

const (
	// ADC configuration
	ADC_REFERENCE_MV = 1100 // Internal bandgap reference in millivolts (1.1V)

	// TMP36 output (ADC2, selected through ADMUX)
	PIN_SENSOR = machine.ADC2

	// Too-hot LED
	PIN_TOO_HOT_LED = machine.PB2

	// F/C select switch (C when pressed). Configured with a pull-up but not
	// read: both scales are always shown.
	PIN_F_C_SELECT = machine.PB3

	// SSD1306 on the hardware I2C bus
	OLED_ADDRESS = 0x3C
	OLED_WIDTH   = 128
	OLED_HEIGHT  = 64
)
