package magick

import (
	"iter"
	"path/filepath"
)

var (
	versionTags = []string{"", "-Q16", "-Q8", "-6.Q16"}
	featureTags = []string{"", "HDRI"}
)

// Suffixes returns every library name suffix in the order they are tried:
// each version tag combined with each feature tag, most generic first.
func Suffixes() []string {
	out := make([]string, 0, len(versionTags)*len(featureTags))
	for _, v := range versionTags {
		for _, f := range featureTags {
			out = append(out, v+f)
		}
	}
	return out
}

// Candidate is one pair of paths the loader can try. Wand and Core are the
// same file everywhere except Windows, where MagickCore ships separately.
type Candidate struct {
	Suffix string
	Wand   string
	Core   string
}

// Shared reports whether both APIs live in a single shared object.
func (c Candidate) Shared() bool {
	return c.Wand == c.Core
}

// SearchFunc resolves a bare library name (no "lib" prefix, no extension)
// to a loadable path, or returns "" when nothing matches.
type SearchFunc func(name string) string

// Locator produces candidate library paths for one platform.
type Locator struct {
	GOOS string
	// Home is the installation root override (MAGICK_HOME).
	Home string
	// Search is the generic system search. It is never consulted when Home
	// is set.
	Search SearchFunc
}

// NewLocator returns a Locator for cfg using the platform's system search.
func NewLocator(cfg Config) *Locator {
	goos := cfg.goos()
	return &Locator{
		GOOS:   goos,
		Home:   cfg.Home,
		Search: SystemSearch(goos),
	}
}

// Find returns the MagickWand and MagickCore paths for one suffix. Either
// may be "" when it cannot be determined.
func (l *Locator) Find(suffix string) (wand, core string) {
	if l.Home != "" {
		switch l.GOOS {
		case "windows":
			return filepath.Join(l.Home, "CORE_RL_wand_"+suffix+".dll"),
				filepath.Join(l.Home, "CORE_RL_magick_"+suffix+".dll")
		case "darwin":
			wand = filepath.Join(l.Home, "lib", "libMagickWand"+suffix+".dylib")
		default:
			wand = filepath.Join(l.Home, "lib", "libMagickWand"+suffix+".so")
		}
		return wand, wand
	}

	if l.Search == nil {
		return "", ""
	}
	if l.GOOS == "windows" {
		// The API is split between two DLLs on Windows only.
		return l.Search("CORE_RL_wand_" + suffix), l.Search("CORE_RL_magick_" + suffix)
	}
	wand = l.Search("MagickWand" + suffix)
	return wand, wand
}

// Candidates yields viable candidates lazily in priority order. Suffixes for
// which either path is empty are skipped. Stopping the iteration early stops
// the search, so later suffixes are never looked up.
func (l *Locator) Candidates() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, suffix := range Suffixes() {
			wand, core := l.Find(suffix)
			if wand == "" || core == "" {
				continue
			}
			if !yield(Candidate{Suffix: suffix, Wand: wand, Core: core}) {
				return
			}
		}
	}
}
