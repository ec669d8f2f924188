package magick

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Tried: []string{"/usr/lib/libMagickWand.so"}, Hint: "apt-get install libmagickwand-dev"}
	assert.True(t, errors.Is(err, ErrLibraryNotFound))
	assert.Contains(t, err.Error(), `"/usr/lib/libMagickWand.so"`)
	assert.Contains(t, err.Error(), "apt-get install libmagickwand-dev")

	bare := &LoadError{}
	assert.NotContains(t, bare.Error(), "Try to install")
}

func TestInstallHint(t *testing.T) {
	assert.Equal(t, "pkg install ImageMagick7", installHint("freebsd"))
	assert.Contains(t, installHint("windows"), "#windows")
	assert.Equal(t, installDocs, installHint("plan9"))
	assert.NotEmpty(t, installHint("darwin"))
	assert.NotEmpty(t, installHint("linux"))
}
