package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"iosuite.io/libs/magick"
)

func init() {
	locateCmd := &cobra.Command{
		Use:   "locate",
		Short: "List ImageMagick library candidates in the order they are tried",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			locator := magick.NewLocator(cfg)

			if cfg.Home != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "MAGICK_HOME:", cfg.Home)
			}
			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Suffix", "MagickWand", "MagickCore"}),
			)
			n := 0
			for c := range locator.Candidates() {
				table.Append(suffixLabel(c.Suffix), c.Wand, c.Core)
				n++
			}
			if n == 0 {
				return fmt.Errorf("%w; searched suffixes: %s", magick.ErrLibraryNotFound, strings.Join(suffixLabels(), ", "))
			}
			return table.Render()
		},
	}

	rootCmd.AddCommand(locateCmd)
}

func suffixLabel(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func suffixLabels() []string {
	var out []string
	for _, s := range magick.Suffixes() {
		out = append(out, suffixLabel(s))
	}
	return out
}
