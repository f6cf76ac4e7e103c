//go:build tinygo

//go:generate tinygo flash -target=arduino-nano

package main

import (
	"device/avr"
	"machine"
	"time"

	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/itohio/tinytemp/pkg/thermometer"
	"tinygo.org/x/drivers/ssd1306"
)

// The ADC and the watchdog are driven through their registers. machine.ADC
// always selects the AVCC reference on AVR and machine.Watchdog does not
// exist for the ATmega328P.

// adc2 converts the TMP36 on ADC2 against the internal 1.1 V bandgap.
type adc2 struct{}

func initADC() adc2 {
	// REFS1|REFS0 selects the 1.1 V bandgap on the ATmega328P (REFS1 alone is
	// reserved there). MUX1 selects ADC2.
	avr.ADMUX.Set(avr.ADMUX_REFS1 | avr.ADMUX_REFS0 | avr.ADMUX_MUX1)
	// 16 MHz / 128 = 125 kHz, inside the 50-200 kHz window for 10 bits.
	avr.ADCSRA.Set(avr.ADCSRA_ADEN | avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0)

	a := adc2{}
	// The first conversion after switching the reference is off.
	a.ReadRaw()
	return a
}

func (adc2) ReadRaw() sensor.RawSample {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
	for !avr.ADCSRA.HasBits(avr.ADCSRA_ADIF) {
	}
	// Writing one clears the flag.
	avr.ADCSRA.SetBits(avr.ADCSRA_ADIF)

	// ADCL must be read first; it latches ADCH.
	lo := avr.ADCL.Get()
	hi := avr.ADCH.Get()
	return sensor.RawSample(uint16(hi&0x03)<<8 | uint16(lo))
}

// led drives the too-hot LED.
type led struct {
	pin machine.Pin
}

func (l led) Set(active bool) {
	l.pin.Set(active)
}

// mcu arms the watchdog in system reset mode and powers the CPU down until
// the watchdog resets it.
type mcu struct{}

// watchdogOff disarms a watchdog left running by the previous cycle. After a
// watchdog reset WDE is forced on with the shortest timeout until WDRF is
// cleared.
func watchdogOff() {
	avr.Asm("cli")
	avr.Asm("wdr")
	avr.MCUSR.ClearBits(avr.MCUSR_WDRF)
	avr.WDTCSR.Set(avr.WDTCSR_WDCE | avr.WDTCSR_WDE)
	avr.WDTCSR.Set(0)
	avr.Asm("sei")
}

// watchdogPrescaler returns the WDP bits of the shortest timeout of at least
// d. Timeouts run from 16 ms to 8 s in powers of two.
func watchdogPrescaler(d time.Duration) uint8 {
	n := 0
	for n < 9 && (16*time.Millisecond)<<n < d {
		n++
	}

	var bits uint8
	if n&1 != 0 {
		bits |= avr.WDTCSR_WDP0
	}
	if n&2 != 0 {
		bits |= avr.WDTCSR_WDP1
	}
	if n&4 != 0 {
		bits |= avr.WDTCSR_WDP2
	}
	if n&8 != 0 {
		bits |= avr.WDTCSR_WDP3
	}
	return bits
}

func (mcu) ArmWatchdog(d time.Duration) {
	wdp := watchdogPrescaler(d)

	avr.Asm("cli")
	avr.Asm("wdr")
	// Timed sequence: the new value must follow WDCE|WDE within four cycles.
	avr.WDTCSR.Set(avr.WDTCSR_WDCE | avr.WDTCSR_WDE)
	avr.WDTCSR.Set(avr.WDTCSR_WDE | wdp)
	avr.Asm("sei")
}

func (mcu) EnterLowPowerSleep() {
	// Power-down with interrupts off: only the watchdog reset wakes the CPU.
	avr.SMCR.Set(avr.SMCR_SM1 | avr.SMCR_SE)
	avr.Asm("cli")
	for {
		avr.Asm("sleep")
	}
}

func init() {
	watchdogOff()
}

func main() {
	settings := thermometer.DefaultSettings()
	settings.VRef = ADC_REFERENCE_MV / 1000.0

	PIN_TOO_HOT_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_F_C_SELECT.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_SENSOR.Configure(machine.PinConfig{Mode: machine.PinInput})

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: OLED_ADDRESS,
		Width:   OLED_WIDTH,
		Height:  OLED_HEIGHT,
	})

	th := thermometer.New(settings, initADC(), &oled{dev: &dev}, led{pin: PIN_TOO_HOT_LED})
	th.Run(mcu{})
}
