package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"iosuite.io/libs/magick"
)

var (
	magickHome string
	debug      bool

	binding *magick.Binding
)

var rootCmd = &cobra.Command{
	Use:           "iomagick",
	Short:         "Run ImageMagick utilities in-process through MagickWand",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			magick.ConfigureLogging(os.Stderr, true)
		}
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&magickHome, "magick-home", "", "ImageMagick installation root (overrides MAGICK_HOME)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func config() magick.Config {
	cfg := magick.ConfigFromEnv()
	if magickHome != "" {
		cfg.Home = magickHome
	}
	return cfg
}

// registry loads ImageMagick on first use.
func registry() (*magick.Registry, error) {
	if binding == nil {
		binding = magick.NewBinding(config())
	}
	return binding.Registry()
}
