package magick

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// OwnedAddr is the raw address of memory allocated by ImageMagick that the
// caller must give back through MagickRelinquishMemory. Declarations return
// OwnedAddr only for non-const results; const strings are declared as Go
// strings and copied instead.
type OwnedAddr uintptr

// OwnedString is a read-only view of a NUL-terminated buffer allocated by
// ImageMagick. The buffer is never copied into Go memory behind the caller's
// back; the wrapper keeps the native address until Release hands it to the
// native deallocator.
//
// Release is single-shot. A wrapper that is dropped without Release is
// relinquished by a runtime cleanup once it becomes unreachable.
type OwnedString struct {
	addr       uintptr
	relinquish func(uintptr)
	released   atomic.Bool
	cleanup    runtime.Cleanup
}

// NewOwnedString takes ownership of addr. relinquish must be the allocator's
// own release entry point (MagickRelinquishMemory), never libc free.
func NewOwnedString(addr OwnedAddr, relinquish func(uintptr)) *OwnedString {
	s := &OwnedString{addr: uintptr(addr), relinquish: relinquish}
	if addr != 0 {
		s.cleanup = runtime.AddCleanup(s, relinquish, uintptr(addr))
	}
	return s
}

// Addr returns the native address, or 0 once released.
func (s *OwnedString) Addr() uintptr {
	if s.released.Load() {
		return 0
	}
	return s.addr
}

// IsNull reports whether the native call returned NULL.
func (s *OwnedString) IsNull() bool {
	return s.addr == 0
}

// String copies the buffer contents. It returns "" for NULL or released
// buffers.
func (s *OwnedString) String() string {
	p := s.Addr()
	if p == 0 {
		return ""
	}
	return goString(p)
}

// Bytes copies the buffer contents without the terminating NUL.
func (s *OwnedString) Bytes() []byte {
	p := s.Addr()
	if p == 0 {
		return nil
	}
	return []byte(goString(p))
}

// Len returns the length of the buffer up to the terminating NUL.
func (s *OwnedString) Len() int {
	p := s.Addr()
	if p == 0 {
		return 0
	}
	return cstrlen(p)
}

// Release hands the buffer back to ImageMagick. Only the first call has an
// effect. A NULL address is still passed through; the native deallocator
// treats it as a no-op.
func (s *OwnedString) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	s.cleanup.Stop()
	s.relinquish(s.addr)
}

// Close releases the buffer and implements io.Closer.
func (s *OwnedString) Close() error {
	s.Release()
	return nil
}

// OwnedStringArray owns a native char** of n elements where both the array
// and every element were allocated by ImageMagick, as returned by
// MagickQueryFormats, MagickQueryFonts and MagickQueryConfigureOptions.
type OwnedStringArray struct {
	addr       uintptr
	n          int
	relinquish func(uintptr)
	released   atomic.Bool
	cleanup    runtime.Cleanup
}

type arrayRef struct {
	addr uintptr
	n    int
}

// NewOwnedStringArray takes ownership of the array at addr and its n
// elements.
func NewOwnedStringArray(addr OwnedAddr, n uint, relinquish func(uintptr)) *OwnedStringArray {
	a := &OwnedStringArray{addr: uintptr(addr), n: int(n), relinquish: relinquish}
	if addr == 0 {
		a.n = 0
		return a
	}
	a.cleanup = runtime.AddCleanup(a, func(ref arrayRef) {
		relinquishArray(ref.addr, ref.n, relinquish)
	}, arrayRef{addr: a.addr, n: a.n})
	return a
}

// Len returns the number of elements.
func (a *OwnedStringArray) Len() int {
	if a.released.Load() {
		return 0
	}
	return a.n
}

// Strings copies every element into Go memory.
func (a *OwnedStringArray) Strings() []string {
	if a.released.Load() || a.addr == 0 {
		return nil
	}
	elems := unsafe.Slice((*uintptr)(unsafe.Pointer(a.addr)), a.n)
	out := make([]string, 0, a.n)
	for _, p := range elems {
		out = append(out, goString(p))
	}
	return out
}

// Release relinquishes every element and then the array itself. Only the
// first call has an effect.
func (a *OwnedStringArray) Release() {
	if !a.released.CompareAndSwap(false, true) {
		return
	}
	a.cleanup.Stop()
	relinquishArray(a.addr, a.n, a.relinquish)
}

// Close releases the array and implements io.Closer.
func (a *OwnedStringArray) Close() error {
	a.Release()
	return nil
}

func relinquishArray(addr uintptr, n int, relinquish func(uintptr)) {
	if addr != 0 {
		for _, p := range unsafe.Slice((*uintptr)(unsafe.Pointer(addr)), n) {
			relinquish(p)
		}
	}
	relinquish(addr)
}

func cstrlen(p uintptr) int {
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return n
}

// goString copies the NUL-terminated string at p.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), cstrlen(p)))
}
