package magick

import (
	"fmt"
	"unsafe"
)

var commandRunner = []string{
	"MagickCommandGenesis",
	"AcquireImageInfo",
	"DestroyImageInfo",
	"AcquireExceptionInfo",
	"DestroyExceptionInfo",
	"CatchException",
}

// CommandEntry implements Native.
func (r *Registry) CommandEntry(u Utility) (uintptr, error) {
	if err := r.require(commandRunner...); err != nil {
		return 0, err
	}
	if u < 0 || u >= utilityCount {
		return 0, fmt.Errorf("%w: utility %d", ErrUnknownUtility, int(u))
	}
	if r.commands[u] == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnavailable, u.Symbol())
	}
	return r.commands[u], nil
}

// NewImageInfo implements Native.
func (r *Registry) NewImageInfo() uintptr {
	return r.AcquireImageInfo()
}

// DestroyImageInfoHandle implements Native.
func (r *Registry) DestroyImageInfoHandle(info uintptr) {
	r.DestroyImageInfo(info)
}

// NewExceptionInfo implements Native.
func (r *Registry) NewExceptionInfo() uintptr {
	return r.AcquireExceptionInfo()
}

// DestroyExceptionInfoHandle implements Native.
func (r *Registry) DestroyExceptionInfoHandle(exception uintptr) {
	r.DestroyExceptionInfo(exception)
}

// CommandGenesis implements Native.
func (r *Registry) CommandGenesis(info, entry uintptr, argc int32, argv unsafe.Pointer, exception uintptr) int32 {
	return r.MagickCommandGenesis(info, entry, argc, argv, nil, exception)
}

// ReportException implements Native.
func (r *Registry) ReportException(exception uintptr) {
	r.CatchException(exception)
}

// FlushStreams flushes every C stdio stream so native output is not left
// buffered behind Go's own writes.
func (r *Registry) FlushStreams() {
	if r.Fflush != nil {
		r.Fflush(0)
	}
}
