package magick

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrLibraryNotFound is returned when no MagickWand candidate could be opened.
	ErrLibraryNotFound = errors.New("MagickWand shared library not found")
	// ErrUnavailable marks an entry point the loaded ImageMagick build does not export.
	ErrUnavailable = errors.New("capability unavailable in loaded ImageMagick")
	// ErrUnknownUtility is returned for a command whose first token is not an ImageMagick utility.
	ErrUnknownUtility = errors.New("unknown ImageMagick utility")
	// ErrInvalidArguments is returned for malformed command input.
	ErrInvalidArguments = errors.New("invalid command arguments")
)

// LoadError reports every path the loader tried before giving up.
type LoadError struct {
	Tried []string
	Hint  string
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v; tried paths: %q", ErrLibraryNotFound, e.Tried)
	if e.Hint != "" {
		b.WriteString("\nYou probably had not installed ImageMagick library.\nTry to install:\n  ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return ErrLibraryNotFound
}

// UnknownUtilityError names the rejected utility.
type UnknownUtilityError struct {
	Name string
}

func (e *UnknownUtilityError) Error() string {
	return fmt.Sprintf("expecting ImageMagick utility, not %q", e.Name)
}

func (e *UnknownUtilityError) Unwrap() error {
	return ErrUnknownUtility
}

const installDocs = "https://imagemagick.org/script/download.php"

// installHint suggests how to install MagickWand on goos.
func installHint(goos string) string {
	switch goos {
	case "freebsd":
		return "pkg install ImageMagick7"
	case "windows":
		return installDocs + "#windows"
	case "darwin":
		if _, err := exec.LookPath("brew"); err == nil {
			return "brew install freetype imagemagick"
		}
		if _, err := exec.LookPath("port"); err == nil {
			return "port install imagemagick"
		}
		return installDocs + "#macosx"
	case "linux":
		switch linuxDistro() {
		case "debian", "ubuntu":
			return "apt-get install libmagickwand-dev"
		case "fedora", "centos", "rhel", "redhat":
			return "yum install ImageMagick-devel"
		}
	}
	return installDocs
}

func linuxDistro() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if id, ok := strings.CutPrefix(line, "ID="); ok {
			return strings.ToLower(strings.Trim(id, "\"' "))
		}
	}
	return ""
}
