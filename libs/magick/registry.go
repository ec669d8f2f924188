package magick

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ebitengine/purego"
)

// Capability records whether one native entry point was bound.
type Capability struct {
	Name     string
	Library  string
	Present  bool
	Optional bool
}

// Registry holds the loaded MagickWand, MagickCore and C runtime libraries
// together with the bound call surface. It is read-only once Open returns
// and may be shared between goroutines; the native objects created through
// it follow ImageMagick's own thread-safety rules.
type Registry struct {
	API

	candidate Candidate
	wand      Library
	core      Library
	crt       Library

	caps     map[string]Capability
	commands [utilityCount]uintptr
}

// binder attaches a native function address to a Go function pointer.
type binder func(fptr any, addr uintptr)

// Open locates and loads ImageMagick as described by cfg and binds every
// declared entry point. A missing library is fatal; a missing entry point only
// marks that capability absent.
func Open(cfg Config) (*Registry, error) {
	return openRegistry(NewLoader(cfg), func() (Library, error) {
		return openLibrary(crtPath())
	}, purego.RegisterFunc)
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Open(ConfigFromEnv())
})

// Default returns the process-wide Registry, loading it on first use from the
// environment. Later calls return the same Registry or the same error.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Binding opens a Registry lazily, at most once.
type Binding struct {
	open func() (*Registry, error)
	once sync.Once
	reg  *Registry
	err  error
}

// NewBinding returns a Binding that opens ImageMagick with cfg on first use.
func NewBinding(cfg Config) *Binding {
	return &Binding{open: func() (*Registry, error) { return Open(cfg) }}
}

// Registry returns the bound Registry, opening it on the first call.
func (b *Binding) Registry() (*Registry, error) {
	b.once.Do(func() {
		b.reg, b.err = b.open()
	})
	return b.reg, b.err
}

func openRegistry(loader *Loader, openCRT func() (Library, error), bind binder) (*Registry, error) {
	loaded, err := loader.Load()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		candidate: loaded.Candidate,
		wand:      loaded.Wand,
		core:      loaded.Core,
		caps:      make(map[string]Capability),
	}

	if openCRT != nil {
		crt, err := openCRT()
		if err != nil {
			Error("failed to open C runtime", "error", err)
		} else {
			r.crt = crt
		}
	}

	r.bind(bind)

	Info("ImageMagick loaded", "wand", r.wand.Path(), "core", r.core.Path(), "missing", len(r.Missing()))
	return r, nil
}

func (r *Registry) library(kind libraryKind) Library {
	switch kind {
	case libWand:
		return r.wand
	case libCore:
		return r.core
	case libC:
		return r.crt
	}
	return nil
}

func (r *Registry) bind(bind binder) {
	for _, d := range r.API.declarations() {
		c := Capability{Name: d.name, Library: d.lib.String(), Optional: d.optional}
		if lib := r.library(d.lib); lib != nil {
			addr, err := lib.Symbol(d.name)
			if err == nil && addr != 0 {
				if err := attach(bind, d.fn, addr); err != nil {
					Error("failed to bind symbol", "name", d.name, "error", err)
				} else {
					c.Present = true
				}
			}
		}
		if !c.Present {
			Debug("capability unavailable", "name", d.name, "library", c.Library, "optional", d.optional)
		}
		r.caps[d.name] = c
	}

	for _, u := range Utilities() {
		c := Capability{Name: u.Symbol(), Library: libWand.String()}
		if addr, err := r.wand.Symbol(u.Symbol()); err == nil && addr != 0 {
			r.commands[u] = addr
			c.Present = true
		}
		r.caps[c.Name] = c
	}
}

func attach(bind binder, fptr any, addr uintptr) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%v", v)
		}
	}()
	bind(fptr, addr)
	return nil
}

// Candidate returns the library candidate that was loaded.
func (r *Registry) Candidate() Candidate {
	return r.candidate
}

// Has reports whether the named entry point is bound.
func (r *Registry) Has(name string) bool {
	return r.caps[name].Present
}

// Capabilities lists every declared entry point sorted by name.
func (r *Registry) Capabilities() []Capability {
	out := make([]Capability, 0, len(r.caps))
	for _, c := range r.caps {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Capability) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// Missing lists the names of entry points that are not bound.
func (r *Registry) Missing() []string {
	var out []string
	for name, c := range r.caps {
		if !c.Present {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func (r *Registry) require(names ...string) error {
	for _, name := range names {
		if !r.Has(name) {
			return fmt.Errorf("%w: %s", ErrUnavailable, name)
		}
	}
	return nil
}

func (r *Registry) relinquish(addr uintptr) {
	if r.MagickRelinquishMemory == nil {
		Error("MagickRelinquishMemory unavailable, leaking native buffer", "addr", addr)
		return
	}
	r.MagickRelinquishMemory(addr)
}

// Own wraps an owned return value so it is released through
// MagickRelinquishMemory.
func (r *Registry) Own(addr OwnedAddr) *OwnedString {
	return NewOwnedString(addr, r.relinquish)
}

// OwnArray wraps an owned char** of n elements.
func (r *Registry) OwnArray(addr OwnedAddr, n uint) *OwnedStringArray {
	return NewOwnedStringArray(addr, n, r.relinquish)
}
