package main

import (
	"fmt"
	"os"

	"iosuite.io/tools/iomagick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
