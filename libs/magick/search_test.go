package magick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ldconfigOutput = `1523 libs found in cache ` + "`/etc/ld.so.cache'" + `
	libMagickWand-6.Q16.so.6 (libc6,x86-64) => /usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6
	libMagickWand-6.Q16HDRI.so.6 (libc6,x86-64) => /usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16HDRI.so.6
	libMagickCore-6.Q16.so.6 (libc6,x86-64) => /usr/lib/x86_64-linux-gnu/libMagickCore-6.Q16.so.6
	libc.so.6 (libc6,x86-64, OS ABI: Linux 3.2.0) => /lib/x86_64-linux-gnu/libc.so.6
`

const multilibOutput = `3 libs found in cache ` + "`/etc/ld.so.cache'" + `
	libMagickWand-6.Q16.so.6 (libc6) => /usr/lib/i386-linux-gnu/libMagickWand-6.Q16.so.6
	libMagickWand-6.Q16.so.6 (libc6,x86-64) => /usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6
	libMagickWand-6.Q16.so.6 (libc6,AArch64) => /usr/lib/aarch64-linux-gnu/libMagickWand-6.Q16.so.6
Cache generated by: ldconfig (GNU libc) stable release version 2.36
`

func TestParseLdconfig(t *testing.T) {
	entries := parseLdconfig([]byte(ldconfigOutput))
	require.Len(t, entries, 4)
	assert.Equal(t, "libMagickWand-6.Q16.so.6", entries[0].soname)
	assert.Equal(t, "/usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6", entries[0].path)
	assert.Equal(t, "/lib/x86_64-linux-gnu/libc.so.6", entries[3].path)
	assert.Equal(t, []string{"libc6", "x86-64"}, entries[0].flags)
	assert.Equal(t, []string{"libc6", "x86-64", "OS ABI: Linux 3.2.0"}, entries[3].flags)
}

func TestLdconfigLookup(t *testing.T) {
	entries := parseLdconfig([]byte(ldconfigOutput))
	tests := []struct {
		name string
		want string
	}{
		{"MagickWand-6.Q16", "/usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6"},
		{"MagickWand-6.Q16HDRI", "/usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16HDRI.so.6"},
		{"MagickWand", ""},
		{"MagickWand-Q16", ""},
	}

	for _, tt := range tests {
		if got := ldconfigLookup(entries, tt.name, "amd64"); got != tt.want {
			t.Errorf("ldconfigLookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLdconfigLookupMultilib(t *testing.T) {
	entries := parseLdconfig([]byte(multilibOutput))
	tests := []struct {
		goarch string
		want   string
	}{
		{"amd64", "/usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6"},
		{"arm64", "/usr/lib/aarch64-linux-gnu/libMagickWand-6.Q16.so.6"},
		{"386", "/usr/lib/i386-linux-gnu/libMagickWand-6.Q16.so.6"},
		{"ppc64le", ""},
		{"riscv64", "/usr/lib/i386-linux-gnu/libMagickWand-6.Q16.so.6"},
	}

	for _, tt := range tests {
		if got := ldconfigLookup(entries, "MagickWand-6.Q16", tt.goarch); got != tt.want {
			t.Errorf("ldconfigLookup(%q) = %q, want %q", tt.goarch, got, tt.want)
		}
	}
}

func TestFirstSharedObject(t *testing.T) {
	empty := t.TempDir()
	dir := t.TempDir()
	for _, name := range []string{"libMagickWand-6.Q16.so.6", "libMagickWand-6.Q16HDRI.so.6", "libMagickWand.so.7.1"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	dirs := []string{"", empty, dir}
	assert.Equal(t, filepath.Join(dir, "libMagickWand-6.Q16.so.6"), firstSharedObject(dirs, "MagickWand-6.Q16"))
	assert.Equal(t, filepath.Join(dir, "libMagickWand.so.7.1"), firstSharedObject(dirs, "MagickWand"))
	assert.Empty(t, firstSharedObject(dirs, "MagickWand-Q8"))
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libMagickWand.dylib"), nil, 0o644))

	assert.Equal(t, filepath.Join(dir, "libMagickWand.dylib"), firstExisting([]string{t.TempDir(), dir}, "libMagickWand.dylib"))
	assert.Empty(t, firstExisting([]string{dir}, "libMagickWandHDRI.dylib"))
}

func TestSystemSearchDarwin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libMagickWand-Q16.dylib"), nil, 0o644))
	t.Setenv("DYLD_LIBRARY_PATH", dir)

	search := SystemSearch("darwin")
	assert.Equal(t, filepath.Join(dir, "libMagickWand-Q16.dylib"), search("MagickWand-Q16"))
}

func TestSystemSearchWindows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CORE_RL_wand_.dll"), nil, 0o644))
	t.Setenv("PATH", dir)

	search := SystemSearch("windows")
	assert.Equal(t, filepath.Join(dir, "CORE_RL_wand_.dll"), search("CORE_RL_wand_"))
	assert.Empty(t, search("CORE_RL_magick_"))
}
