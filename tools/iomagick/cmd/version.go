package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the loaded ImageMagick version",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			version, _, err := reg.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			if date, err := reg.ReleaseDate(); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Release date:", date)
			}
			if depth, _, err := reg.QuantumDepth(); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Quantum depth:", depth)
			}
			if copyright, err := reg.Copyright(); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), copyright)
			}
			c := reg.Candidate()
			fmt.Fprintln(cmd.OutOrStdout(), "Library:", c.Wand)
			if !c.Shared() {
				fmt.Fprintln(cmd.OutOrStdout(), "Core library:", c.Core)
			}
			return nil
		},
	}

	rootCmd.AddCommand(versionCmd)
}
