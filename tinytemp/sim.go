package main

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/tinytemp/pkg/config"
	"github.com/itohio/tinytemp/pkg/power"
	"github.com/itohio/tinytemp/pkg/screen"
	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/itohio/tinytemp/pkg/thermometer"
	"github.com/spf13/cobra"
)

func newSimCmd(opts *options) *cobra.Command {
	var scale float32

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Open a desktop simulator of the thermometer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			runSim(cmd.Context(), cfg, scale)
			return nil
		},
	}

	cmd.Flags().Float32Var(&scale, "scale", 4, "Screen pixels per display pixel")

	return cmd
}

// simState holds the simulated board.
type simState struct {
	cfg    *config.Config
	mock   *sensor.Mock
	oled   *screen.OLEDWidget
	status *widget.Label

	// One cycle at a time: the watchdog loop and the Reset button share the
	// display.
	cycleMu sync.Mutex
}

// measure runs a measurement on a freshly built thermometer, the way the
// MCU does after every reset, and returns it.
func (s *simState) measure() thermometer.Reading {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()
	return thermometer.New(s.cfg.Thermometer(), s.mock, s.oled, s.oled).Measure()
}

// show pushes a reading to the widgets. Must run on the Fyne goroutine.
func (s *simState) show(r thermometer.Reading) {
	s.oled.Refresh()
	s.status.SetText(fmt.Sprintf("ADC %d  ->  %.2f °C  /  %.2f °F", r.Raw, r.Celsius, r.Fahrenheit))
}

func runSim(ctx context.Context, cfg *config.Config, scale float32) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	application := app.NewWithID("com.itohio.tinytemp")
	window := application.NewWindow("tinyTemp")

	state := &simState{
		cfg:    cfg,
		mock:   sensor.NewMock(sensor.RawSample(cfg.Mock.Raw), cfg.Mock.Noise),
		oled:   screen.New(cfg.Display.Columns, cfg.Display.Rows, cfg.Display.GlyphWidth, scale),
		status: widget.NewLabel(""),
	}

	rawLabel := widget.NewLabel(fmt.Sprintf("ADC %4d", cfg.Mock.Raw))
	slider := widget.NewSlider(0, sensor.MaxRaw)
	slider.Step = 1
	slider.Value = float64(cfg.Mock.Raw)
	slider.OnChanged = func(v float64) {
		state.mock.SetRaw(sensor.RawSample(v))
		rawLabel.SetText(fmt.Sprintf("ADC %4d", int(v)))
	}

	resetBtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		state.show(state.measure())
	})

	controls := container.NewBorder(nil, nil, rawLabel, resetBtn, slider)
	window.SetContent(container.NewBorder(
		nil,
		container.NewVBox(controls, state.status),
		nil,
		nil,
		container.NewCenter(state.oled),
	))

	// Power-on and every watchdog reset run a new cycle in the background.
	wd := power.NewWatchdog(ctx)
	go wd.Boot(cfg.Power.Watchdog, 0, func(p *power.Session) {
		r := state.measure()
		fyne.Do(func() { state.show(r) })
		p.ArmWatchdog(cfg.Power.Watchdog)
		p.EnterLowPowerSleep()
	})

	window.SetOnClosed(cancel)
	window.ShowAndRun()
}
