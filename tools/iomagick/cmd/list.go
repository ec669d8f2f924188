package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"iosuite.io/libs/magick"
)

func patternArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "*"
}

func init() {
	formatsCmd := &cobra.Command{
		Use:   "formats [pattern]",
		Short: "List supported image formats and their MIME types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			formats, err := reg.QueryFormats(patternArg(args))
			if err != nil {
				return err
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Format", "MIME Type"}),
			)
			for _, f := range formats {
				mime, err := reg.ToMime(f)
				if err != nil {
					mime = ""
				}
				table.Append(f, mime)
			}
			return table.Render()
		},
	}

	fontsCmd := &cobra.Command{
		Use:   "fonts [pattern]",
		Short: "List fonts known to ImageMagick",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listStrings(cmd, "Font", func(reg *magick.Registry) ([]string, error) {
				return reg.QueryFonts(patternArg(args))
			})
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [pattern]",
		Short: "List ImageMagick build configuration options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			names, err := reg.QueryConfigureOptions(patternArg(args))
			if err != nil {
				return err
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Option", "Value"}),
			)
			for _, name := range names {
				value, err := reg.QueryConfigureOption(name)
				if err != nil {
					return err
				}
				table.Append(name, value)
			}
			return table.Render()
		},
	}

	rootCmd.AddCommand(formatsCmd, fontsCmd, configCmd)
}

func listStrings(cmd *cobra.Command, header string, query func(*magick.Registry) ([]string, error)) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	items, err := query(reg)
	if err != nil {
		return err
	}
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{header}),
	)
	for _, item := range items {
		table.Append(item)
	}
	return table.Render()
}
