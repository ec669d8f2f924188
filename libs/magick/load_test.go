package magick

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary struct {
	path    string
	symbols map[string]uintptr
	closed  int
}

func (l *fakeLibrary) Path() string { return l.path }

func (l *fakeLibrary) Symbol(name string) (uintptr, error) {
	if addr, ok := l.symbols[name]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%s: undefined symbol: %s", l.path, name)
}

func (l *fakeLibrary) Close() error {
	l.closed++
	return nil
}

// fakeOpener opens only the paths in libs and records every attempt.
type fakeOpener struct {
	libs   map[string]*fakeLibrary
	opened []string
}

func (o *fakeOpener) open(path string) (Library, error) {
	o.opened = append(o.opened, path)
	if lib, ok := o.libs[path]; ok {
		return lib, nil
	}
	return nil, fmt.Errorf("%s: cannot open shared object file", path)
}

func linuxLocator(found map[string]string) *Locator {
	rec := &searchRecorder{found: found}
	return &Locator{GOOS: "linux", Search: rec.search}
}

func TestLoadFirstViableCandidate(t *testing.T) {
	op := &fakeOpener{libs: map[string]*fakeLibrary{
		"/lib/libMagickWand-6.Q16.so.6": {path: "/lib/libMagickWand-6.Q16.so.6"},
	}}
	l := &Loader{
		Locator: linuxLocator(map[string]string{
			"MagickWand-Q16":   "/broken/libMagickWand-Q16.so",
			"MagickWand-6.Q16": "/lib/libMagickWand-6.Q16.so.6",
		}),
		Open: op.open,
	}

	loaded, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "-6.Q16", loaded.Candidate.Suffix)
	assert.Same(t, loaded.Wand, loaded.Core)
	assert.Equal(t, []string{"/broken/libMagickWand-Q16.so", "/lib/libMagickWand-6.Q16.so.6"}, loaded.Tried)
	assert.Equal(t, loaded.Tried, op.opened)
}

func TestLoadStopsAtFirstSuccess(t *testing.T) {
	op := &fakeOpener{libs: map[string]*fakeLibrary{
		"/lib/libMagickWand.so": {path: "/lib/libMagickWand.so"},
	}}
	l := &Loader{
		Locator: linuxLocator(map[string]string{
			"MagickWand":       "/lib/libMagickWand.so",
			"MagickWand-6.Q16": "/lib/libMagickWand-6.Q16.so.6",
		}),
		Open: op.open,
	}

	loaded, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded.Candidate.Suffix)
	assert.Equal(t, []string{"/lib/libMagickWand.so"}, op.opened)
}

func TestLoadSplitLibraries(t *testing.T) {
	wand := &fakeLibrary{path: `C:\im\CORE_RL_wand_.dll`}
	op := &fakeOpener{libs: map[string]*fakeLibrary{
		`C:\im\CORE_RL_wand_.dll`:       wand,
		`C:\im\CORE_RL_wand_-Q16.dll`:   {path: `C:\im\CORE_RL_wand_-Q16.dll`},
		`C:\im\CORE_RL_magick_-Q16.dll`: {path: `C:\im\CORE_RL_magick_-Q16.dll`},
	}}
	rec := &searchRecorder{found: map[string]string{
		"CORE_RL_wand_":       `C:\im\CORE_RL_wand_.dll`,
		"CORE_RL_magick_":     `C:\im\CORE_RL_magick_.dll`,
		"CORE_RL_wand_-Q16":   `C:\im\CORE_RL_wand_-Q16.dll`,
		"CORE_RL_magick_-Q16": `C:\im\CORE_RL_magick_-Q16.dll`,
	}}
	l := &Loader{Locator: &Locator{GOOS: "windows", Search: rec.search}, Open: op.open}

	loaded, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "-Q16", loaded.Candidate.Suffix)
	assert.Equal(t, `C:\im\CORE_RL_wand_-Q16.dll`, loaded.Wand.Path())
	assert.Equal(t, `C:\im\CORE_RL_magick_-Q16.dll`, loaded.Core.Path())
	assert.Equal(t, 1, wand.closed, "wand of a candidate whose core failed must be closed")
	assert.Equal(t, []string{
		`C:\im\CORE_RL_wand_.dll`,
		`C:\im\CORE_RL_magick_.dll`,
		`C:\im\CORE_RL_wand_-Q16.dll`,
		`C:\im\CORE_RL_magick_-Q16.dll`,
	}, loaded.Tried)
}

func TestLoadNothingFound(t *testing.T) {
	op := &fakeOpener{}
	l := &Loader{
		Locator: linuxLocator(map[string]string{
			"MagickWand":    "/a/libMagickWand.so",
			"MagickWand-Q8": "/b/libMagickWand-Q8.so",
		}),
		Open: op.open,
	}

	loaded, err := l.Load()
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.True(t, errors.Is(err, ErrLibraryNotFound))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, []string{"/a/libMagickWand.so", "/b/libMagickWand-Q8.so"}, le.Tried)
	assert.Contains(t, err.Error(), "/a/libMagickWand.so")
	assert.Contains(t, err.Error(), "/b/libMagickWand-Q8.so")
}

func TestLoadWithHomeOnlyTriesHome(t *testing.T) {
	op := &fakeOpener{}
	rec := &searchRecorder{found: map[string]string{"MagickWand": "/usr/lib/libMagickWand.so"}}
	l := &Loader{Locator: &Locator{GOOS: "linux", Home: "/opt/im", Search: rec.search}, Open: op.open}

	_, err := l.Load()
	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Empty(t, rec.calls)
	assert.Len(t, op.opened, len(Suffixes()))
	for _, p := range op.opened {
		assert.Contains(t, p, filepath.Join("/opt/im", "lib"))
	}
}
