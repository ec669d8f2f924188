//go:build windows

package magick

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type dll struct {
	path   string
	handle windows.Handle
}

func openLibrary(path string) (Library, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}
	return &dll{path: path, handle: handle}, nil
}

func (d *dll) Path() string {
	return d.path
}

func (d *dll) Symbol(name string) (uintptr, error) {
	return windows.GetProcAddress(d.handle, name)
}

func (d *dll) Close() error {
	if d.handle == 0 {
		return nil
	}
	if err := windows.FreeLibrary(d.handle); err != nil {
		return fmt.Errorf("FreeLibrary %s: %w", d.path, err)
	}
	d.handle = 0
	return nil
}

func crtPath() string {
	return "msvcrt.dll"
}
