package magick

// Library is an opened shared object.
type Library interface {
	Path() string
	// Symbol returns the address of an exported symbol or an error when the
	// library does not export it.
	Symbol(name string) (uintptr, error)
	Close() error
}

// Opener opens the shared object at path with the platform loader.
type Opener func(path string) (Library, error)

// Loaded is the pair of libraries the loader settled on.
type Loaded struct {
	Candidate Candidate
	Wand      Library
	// Core is the same Library as Wand unless the platform splits the API.
	Core  Library
	Tried []string
}

// Loader opens the first viable candidate produced by its Locator.
type Loader struct {
	Locator *Locator
	Open    Opener
}

// NewLoader returns a Loader that uses the platform dynamic loader.
func NewLoader(cfg Config) *Loader {
	return &Loader{
		Locator: NewLocator(cfg),
		Open:    openLibrary,
	}
}

// Load tries candidates strictly in locator order. A candidate that fails to
// open is skipped; when none opens, the returned *LoadError lists every path
// that was attempted.
func (l *Loader) Load() (*Loaded, error) {
	var tried []string
	for c := range l.Locator.Candidates() {
		tried = append(tried, c.Wand)
		wand, err := l.Open(c.Wand)
		if err != nil {
			Debug("failed to open library candidate", "path", c.Wand, "error", err)
			continue
		}
		core := wand
		if !c.Shared() {
			tried = append(tried, c.Core)
			core, err = l.Open(c.Core)
			if err != nil {
				Debug("failed to open library candidate", "path", c.Core, "error", err)
				_ = wand.Close()
				continue
			}
		}
		Debug("opened ImageMagick", "wand", c.Wand, "core", c.Core, "suffix", c.Suffix)
		return &Loaded{Candidate: c, Wand: wand, Core: core, Tried: tried}, nil
	}
	return nil, &LoadError{Tried: tried, Hint: installHint(l.Locator.GOOS)}
}
