//go:build darwin || freebsd || linux || netbsd

package magick

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

type sharedObject struct {
	path   string
	handle uintptr
}

func openLibrary(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	if handle == 0 {
		return nil, fmt.Errorf("dlopen %s: nil handle", path)
	}
	return &sharedObject{path: path, handle: handle}, nil
}

func (so *sharedObject) Path() string {
	return so.path
}

func (so *sharedObject) Symbol(name string) (uintptr, error) {
	return purego.Dlsym(so.handle, name)
}

func (so *sharedObject) Close() error {
	if so.handle == 0 {
		return nil
	}
	if err := purego.Dlclose(so.handle); err != nil {
		return fmt.Errorf("dlclose %s: %w", so.path, err)
	}
	so.handle = 0
	return nil
}

// crtPath names the C runtime that backs fdopen, fflush and free.
func crtPath() string {
	switch runtime.GOOS {
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		return "libc.so.7"
	case "netbsd":
		return "libc.so"
	}
	return "libc.so.6"
}
