package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/breakout/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after loading files and applying flags.
The output can be saved as ~/.breakout/config.yaml and edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal(config.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or toml")
	return cmd
}
