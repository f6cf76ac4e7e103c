package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/itohio/tinytemp/pkg/bench"
	"github.com/itohio/tinytemp/pkg/config"
	"github.com/itohio/tinytemp/pkg/sensor"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	port       string
	raw        int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "tinytemp",
		Short:        "Host tools for the tinyTemp thermometer",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "Configuration file path")
	root.PersistentFlags().StringVarP(&opts.port, "port", "p", "", "Serial port of a bench sensor (e.g. COM3 or /dev/ttyACM0)")
	root.PersistentFlags().IntVar(&opts.raw, "raw", -1, "Mock sensor ADC code 0-1023 (overrides config)")

	root.AddCommand(
		newRunCmd(opts),
		newSimCmd(opts),
		newPortsCmd(),
		newConfigCmd(opts),
	)

	return root
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.port != "" {
		cfg.Serial.Port = opts.port
	}

	if opts.raw >= 0 {
		if opts.raw > sensor.MaxRaw {
			return nil, fmt.Errorf("mock ADC code %d out of range (max %d)", opts.raw, sensor.MaxRaw)
		}
		cfg.Mock.Raw = uint16(opts.raw)
	}

	return cfg, nil
}

// openSensor returns the bench sensor when a port is configured and the
// simulated sensor otherwise. The returned function releases it.
func openSensor(cfg *config.Config) (sensor.Sensor, func(), error) {
	if cfg.Serial.Port == "" {
		log.Printf("Using mock sensor at ADC code %d", cfg.Mock.Raw)
		return sensor.NewMock(sensor.RawSample(cfg.Mock.Raw), cfg.Mock.Noise), func() {}, nil
	}

	dev := bench.New(cfg.Serial.Port, cfg.Serial.BaudRate, 0)
	if err := dev.Connect(); err != nil {
		return nil, nil, err
	}
	log.Printf("Reading bench sensor on %s", cfg.Serial.Port)

	return dev, func() {
		if err := dev.Close(); err != nil {
			log.Printf("Failed to close bench sensor: %v", err)
		}
	}, nil
}
