package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"iosuite.io/libs/magick"
)

var (
	template string
	sets     []string
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run a command template such as \"convert {source} -resize 64x64 {output}\"",
	Example: `  iomagick run -t "convert {source} -resize 50% {output}" --set source=in.png --set output=out.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if template == "" {
			return fmt.Errorf("template is required")
		}
		values, err := parseSets(sets)
		if err != nil {
			return err
		}
		tokens, err := magick.NewCommand(nil).Bind(template).Tokens(values)
		if err != nil {
			return err
		}
		return runTokens(cmd, tokens)
	},
}

func parseSets(sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q, expecting name=value", s)
		}
		values[k] = v
	}
	return values, nil
}

func init() {
	runCmd.Flags().StringVarP(&template, "template", "t", "", "Command template with {name} placeholders")
	runCmd.Flags().StringArrayVar(&sets, "set", nil, "Placeholder value as name=value (repeatable)")
	rootCmd.AddCommand(runCmd)
}
