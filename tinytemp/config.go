package main

import (
	"fmt"

	"github.com/itohio/tinytemp/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().Save(opts.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.configPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			s := cfg.Thermometer()
			fmt.Fprintf(cmd.OutOrStdout(), "samples=%d vref=%.3g max_temp_f=%g unit_column=%d watchdog=%s port=%q\n",
				s.Samples, s.VRef, s.MaxTempF, s.UnitColumn, s.Watchdog, cfg.Serial.Port)
			return nil
		},
	})

	return cmd
}
