package magick

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixes(t *testing.T) {
	want := []string{"", "HDRI", "-Q16", "-Q16HDRI", "-Q8", "-Q8HDRI", "-6.Q16", "-6.Q16HDRI"}
	assert.Equal(t, want, Suffixes())
}

type searchRecorder struct {
	calls []string
	found map[string]string
}

func (s *searchRecorder) search(name string) string {
	s.calls = append(s.calls, name)
	return s.found[name]
}

func TestFindWithHome(t *testing.T) {
	home := filepath.Join("opt", "im")
	tests := []struct {
		goos string
		wand string
		core string
	}{
		{"windows", filepath.Join(home, "CORE_RL_wand_-Q16.dll"), filepath.Join(home, "CORE_RL_magick_-Q16.dll")},
		{"darwin", filepath.Join(home, "lib", "libMagickWand-Q16.dylib"), filepath.Join(home, "lib", "libMagickWand-Q16.dylib")},
		{"linux", filepath.Join(home, "lib", "libMagickWand-Q16.so"), filepath.Join(home, "lib", "libMagickWand-Q16.so")},
		{"freebsd", filepath.Join(home, "lib", "libMagickWand-Q16.so"), filepath.Join(home, "lib", "libMagickWand-Q16.so")},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			rec := &searchRecorder{}
			l := &Locator{GOOS: tt.goos, Home: home, Search: rec.search}
			wand, core := l.Find("-Q16")
			assert.Equal(t, tt.wand, wand)
			assert.Equal(t, tt.core, core)
			assert.Empty(t, rec.calls, "system search must not run when home is set")
		})
	}
}

func TestFindWithSearch(t *testing.T) {
	t.Run("windows", func(t *testing.T) {
		rec := &searchRecorder{found: map[string]string{
			"CORE_RL_wand_":   `C:\im\CORE_RL_wand_.dll`,
			"CORE_RL_magick_": `C:\im\CORE_RL_magick_.dll`,
		}}
		l := &Locator{GOOS: "windows", Search: rec.search}
		wand, core := l.Find("")
		assert.Equal(t, `C:\im\CORE_RL_wand_.dll`, wand)
		assert.Equal(t, `C:\im\CORE_RL_magick_.dll`, core)
		assert.Equal(t, []string{"CORE_RL_wand_", "CORE_RL_magick_"}, rec.calls)
	})

	t.Run("linux", func(t *testing.T) {
		rec := &searchRecorder{found: map[string]string{
			"MagickWand-6.Q16": "/usr/lib/libMagickWand-6.Q16.so.6",
		}}
		l := &Locator{GOOS: "linux", Search: rec.search}
		wand, core := l.Find("-6.Q16")
		assert.Equal(t, "/usr/lib/libMagickWand-6.Q16.so.6", wand)
		assert.Equal(t, wand, core)
		assert.Equal(t, []string{"MagickWand-6.Q16"}, rec.calls)
	})

	t.Run("no search", func(t *testing.T) {
		l := &Locator{GOOS: "linux"}
		wand, core := l.Find("")
		assert.Empty(t, wand)
		assert.Empty(t, core)
	})
}

func TestCandidatesSkipsUnresolved(t *testing.T) {
	rec := &searchRecorder{found: map[string]string{
		"MagickWand-Q16HDRI": "/lib/libMagickWand-Q16HDRI.so",
		"MagickWand-6.Q16":   "/lib/libMagickWand-6.Q16.so",
	}}
	l := &Locator{GOOS: "linux", Search: rec.search}

	var got []Candidate
	for c := range l.Candidates() {
		got = append(got, c)
	}

	require.Len(t, got, 2)
	assert.Equal(t, Candidate{Suffix: "-Q16HDRI", Wand: "/lib/libMagickWand-Q16HDRI.so", Core: "/lib/libMagickWand-Q16HDRI.so"}, got[0])
	assert.Equal(t, "-6.Q16", got[1].Suffix)
	assert.True(t, got[1].Shared())
	assert.Len(t, rec.calls, len(Suffixes()))
}

func TestCandidatesWindowsNeedsBothLibraries(t *testing.T) {
	rec := &searchRecorder{found: map[string]string{
		"CORE_RL_wand_":       `C:\im\CORE_RL_wand_.dll`,
		"CORE_RL_wand_-Q16":   `C:\im\CORE_RL_wand_-Q16.dll`,
		"CORE_RL_magick_-Q16": `C:\im\CORE_RL_magick_-Q16.dll`,
	}}
	l := &Locator{GOOS: "windows", Search: rec.search}

	var got []Candidate
	for c := range l.Candidates() {
		got = append(got, c)
	}

	require.Len(t, got, 1)
	assert.Equal(t, "-Q16", got[0].Suffix)
	assert.False(t, got[0].Shared())
}

func TestCandidatesStopEarly(t *testing.T) {
	rec := &searchRecorder{found: map[string]string{
		"MagickWand":     "/lib/libMagickWand.so",
		"MagickWandHDRI": "/lib/libMagickWandHDRI.so",
	}}
	l := &Locator{GOOS: "linux", Search: rec.search}

	for c := range l.Candidates() {
		assert.Equal(t, "", c.Suffix)
		break
	}
	assert.Equal(t, []string{"MagickWand"}, rec.calls)
}

func TestNewLocator(t *testing.T) {
	l := NewLocator(Config{Home: "/opt/im", GOOS: "darwin"})
	assert.Equal(t, "darwin", l.GOOS)
	assert.Equal(t, "/opt/im", l.Home)
	assert.NotNil(t, l.Search)
}
