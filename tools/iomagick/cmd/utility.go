package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"iosuite.io/libs/magick"
)

func init() {
	for _, u := range magick.Utilities() {
		rootCmd.AddCommand(utilityCommand(u))
	}
}

func utilityCommand(u magick.Utility) *cobra.Command {
	short := fmt.Sprintf("Run ImageMagick %s in-process", u)
	if u.Interactive() {
		short += " (opens an X11 window)"
	}
	return &cobra.Command{
		Use:                u.String() + " [arguments...]",
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, rest, err := peelGlobalFlags(args)
			if err != nil {
				return err
			}
			if home != "" {
				magickHome = home
			}
			if debug {
				magick.ConfigureLogging(os.Stderr, true)
			}
			if len(rest) == 1 && (rest[0] == "--help" || rest[0] == "-h") {
				return cmd.Help()
			}
			return runTokens(cmd, append([]string{u.String()}, rest...))
		},
	}
}

// peelGlobalFlags removes leading --magick-home and --debug flags, which
// cobra leaves in place for commands that do not parse flags. Everything
// after them belongs to the utility.
func peelGlobalFlags(args []string) (home string, rest []string, err error) {
	for len(args) > 0 {
		a := args[0]
		switch {
		case a == "--debug":
			debug = true
			args = args[1:]
		case a == "--magick-home":
			if len(args) < 2 {
				return "", nil, fmt.Errorf("flag needs an argument: --magick-home")
			}
			home = args[1]
			args = args[2:]
		case strings.HasPrefix(a, "--magick-home="):
			home = strings.TrimPrefix(a, "--magick-home=")
			args = args[1:]
		default:
			return home, args, nil
		}
	}
	return home, args, nil
}

func runTokens(cmd *cobra.Command, tokens []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	magick.Debug("Running ImageMagick via CLI", "args", tokens)
	ok, err := magick.NewCommand(reg).Run(cmd.Context(), tokens)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s failed", tokens[0])
	}
	return nil
}
