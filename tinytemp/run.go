package main

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/itohio/tinytemp/pkg/config"
	"github.com/itohio/tinytemp/pkg/console"
	"github.com/itohio/tinytemp/pkg/power"
	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/itohio/tinytemp/pkg/thermometer"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var reboots int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run measurement cycles, rebooting after each watchdog period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("reboots") {
				cfg.Power.Reboots = reboots
			}

			src, release, err := openSensor(cfg)
			if err != nil {
				return err
			}
			defer release()

			err = runCycles(cmd.Context(), cfg, src, cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&reboots, "reboots", "n", 1, "Number of boots to run (0 = until interrupted)")

	return cmd
}

// runCycles boots the emulated device cfg.Power.Reboots times. Every boot
// builds a fresh display and thermometer, exactly like a reset MCU.
func runCycles(ctx context.Context, cfg *config.Config, src sensor.Sensor, out io.Writer) error {
	settings := cfg.Thermometer()
	wd := power.NewWatchdog(ctx)

	return wd.Boot(settings.Watchdog, cfg.Power.Reboots, func(p *power.Session) {
		term := console.New(cfg.Display.Columns, cfg.Display.Rows, cfg.Display.GlyphWidth)

		th := thermometer.New(settings, src, term, term)
		th.OnMeasure(func(r thermometer.Reading) {
			log.Printf("raw=%d celsius=%.2f fahrenheit=%.2f too_hot=%t", r.Raw, r.Celsius, r.Fahrenheit, r.TooHot)
			if err := term.Print(out); err != nil {
				log.Printf("Failed to print display: %v", err)
			}
		})

		th.Run(p)
	})
}
