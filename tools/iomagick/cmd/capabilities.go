package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var missingOnly bool

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show which MagickWand, MagickCore and C runtime entry points were bound",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(cmd.OutOrStdout(),
			tablewriter.WithHeader([]string{"Symbol", "Library", "Present", "Optional"}),
		)
		for _, c := range reg.Capabilities() {
			if missingOnly && c.Present {
				continue
			}
			table.Append(c.Name, c.Library, yesNo(c.Present), yesNo(c.Optional))
		}
		return table.Render()
	},
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func init() {
	capabilitiesCmd.Flags().BoolVar(&missingOnly, "missing", false, "Only list entry points that are not bound")
	rootCmd.AddCommand(capabilitiesCmd)
}
