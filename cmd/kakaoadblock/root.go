package main

import (
	"github.com/spf13/cobra"

	"github.com/kakaoadblock/kakaoadblock/internal/config"
	"github.com/kakaoadblock/kakaoadblock/internal/version"
)

// newRootCmd builds the only command. runFn receives the configuration
// assembled from flags.
func newRootCmd(runFn func(config.Config) error) *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "kakaoadblock",
		Short: version.AppName,
		Long: version.AppName + ` ` + version.Version + `

Runs in the notification area and removes the banner ad and ad popups
from the KakaoTalk desktop client. Use the tray menu to exit.`,
		Version:      version.Version + " (" + version.BuildTime + ")",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFn(cfg)
		},
	}

	rootCmd.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log every window creation event with its size")

	return rootCmd
}
