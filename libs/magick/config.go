package magick

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// EnvVar describes one environment variable understood by the binding.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// Config selects where the binding looks for ImageMagick.
type Config struct {
	// Home is the ImageMagick installation root. When set, only files under
	// it are tried and the system library search is skipped.
	Home string
	// Debug enables debug logging.
	Debug bool
	// GOOS overrides runtime.GOOS for path construction.
	GOOS string
}

// ConfigFromEnv reads MAGICK_HOME and IOMAGICK_DEBUG.
func ConfigFromEnv() Config {
	cfg := Config{
		Home: clean("MAGICK_HOME"),
		GOOS: runtime.GOOS,
	}
	if debug := clean("IOMAGICK_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			cfg.Debug = d
		} else {
			cfg.Debug = true
		}
	}
	return cfg
}

func (c Config) goos() string {
	if c.GOOS == "" {
		return runtime.GOOS
	}
	return c.GOOS
}

// AsMap describes the environment variables with their current values.
func (c Config) AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"MAGICK_HOME":    {"MAGICK_HOME", c.Home, "ImageMagick installation root; disables the system library search"},
		"IOMAGICK_DEBUG": {"IOMAGICK_DEBUG", c.Debug, "Show additional debug information (e.g. IOMAGICK_DEBUG=1)"},
	}
}

// Values returns AsMap rendered as strings.
func (c Config) Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range c.AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}
