package magick

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
)

// SystemSearch returns the generic library search for goos. It follows the
// platform's own resolution order: the ldconfig cache and then the usual
// library directories on ELF systems, the dyld search path on Darwin and
// PATH on Windows.
func SystemSearch(goos string) SearchFunc {
	switch goos {
	case "windows":
		return func(name string) string {
			return firstExisting(splitEnv("PATH"), name+".dll")
		}
	case "darwin":
		return func(name string) string {
			dirs := append(splitEnv("DYLD_LIBRARY_PATH"), "/opt/homebrew/lib", "/usr/local/lib", "/opt/local/lib", "/usr/lib")
			return firstExisting(dirs, "lib"+name+".dylib")
		}
	default:
		return func(name string) string {
			if path := ldconfigLookup(ldconfigCache(), name, runtime.GOARCH); path != "" {
				return path
			}
			dirs := append(splitEnv("LD_LIBRARY_PATH"), "/usr/local/lib", "/usr/lib64", "/usr/lib", "/lib64", "/lib")
			if triplet, err := filepath.Glob("/usr/lib/*-linux-gnu*"); err == nil {
				dirs = append(dirs, triplet...)
			}
			return firstSharedObject(dirs, name)
		}
	}
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return filepath.SplitList(v)
}

func firstExisting(dirs []string, file string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func soPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`^lib` + regexp.QuoteMeta(name) + `\.so(\.[0-9]+)*$`)
}

func firstSharedObject(dirs []string, name string) string {
	re := soPattern(name)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, "lib"+name+".so*"))
		if err != nil {
			continue
		}
		slices.Sort(matches)
		for _, m := range matches {
			if re.MatchString(filepath.Base(m)) {
				return m
			}
		}
	}
	return ""
}

type ldconfigEntry struct {
	soname string
	// flags are the comma-separated ABI tags, e.g. "libc6", "x86-64".
	flags []string
	path  string
}

// ldconfigCache runs `ldconfig -p` once per process.
var ldconfigCache = sync.OnceValue(func() []ldconfigEntry {
	bin, err := exec.LookPath("ldconfig")
	if err != nil {
		bin = "/sbin/ldconfig"
	}
	out, err := exec.Command(bin, "-p").Output()
	if err != nil {
		Debug("ldconfig unavailable", "error", err)
		return nil
	}
	return parseLdconfig(out)
})

// parseLdconfig reads lines of the form
//
//	libMagickWand-6.Q16.so.6 (libc6,x86-64) => /usr/lib/x86_64-linux-gnu/libMagickWand-6.Q16.so.6
func parseLdconfig(out []byte) []ldconfigEntry {
	var entries []ldconfigEntry
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		lhs, path, ok := strings.Cut(line, "=>")
		if !ok {
			continue
		}
		fields := strings.Fields(lhs)
		if len(fields) == 0 {
			continue
		}
		e := ldconfigEntry{soname: fields[0], path: strings.TrimSpace(path)}
		if _, tags, ok := strings.Cut(lhs, "("); ok {
			tags, _, _ = strings.Cut(tags, ")")
			for _, f := range strings.Split(tags, ",") {
				e.flags = append(e.flags, strings.TrimSpace(f))
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// abiFlags maps GOARCH to the ldconfig tag marking a 64-bit library.
var abiFlags = map[string]string{
	"amd64":    "x86-64",
	"arm64":    "AArch64",
	"ppc64":    "64bit",
	"ppc64le":  "64bit",
	"s390x":    "64bit",
	"mips64":   "64bit",
	"mips64le": "64bit",
}

// sixtyFourBit lists the tags ldconfig uses for 64-bit ABIs.
var sixtyFourBit = []string{"x86-64", "AArch64", "64bit", "IA-64"}

// matchesArch reports whether an entry tagged with flags can be loaded by a
// goarch process. Architectures ldconfig has no known tag for accept every
// entry.
func matchesArch(flags []string, goarch string) bool {
	if want, ok := abiFlags[goarch]; ok {
		return slices.Contains(flags, want)
	}
	switch goarch {
	case "386", "arm", "mips", "mipsle":
		for _, f := range sixtyFourBit {
			if slices.Contains(flags, f) {
				return false
			}
		}
	}
	return true
}

func ldconfigLookup(entries []ldconfigEntry, name, goarch string) string {
	re := soPattern(name)
	for _, e := range entries {
		if re.MatchString(e.soname) && matchesArch(e.flags, goarch) {
			return e.path
		}
	}
	return ""
}
