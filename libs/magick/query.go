package magick

// Version returns the ImageMagick version string and its packed version
// number.
func (r *Registry) Version() (string, uint, error) {
	if err := r.require("GetMagickVersion"); err != nil {
		return "", 0, err
	}
	var n uint
	s := r.GetMagickVersion(&n)
	return s, n, nil
}

// ReleaseDate returns the release date of the loaded ImageMagick.
func (r *Registry) ReleaseDate() (string, error) {
	if err := r.require("GetMagickReleaseDate"); err != nil {
		return "", err
	}
	return r.GetMagickReleaseDate(), nil
}

// QuantumDepth returns the quantum depth as text ("Q16") and as a number.
func (r *Registry) QuantumDepth() (string, uint, error) {
	if err := r.require("GetMagickQuantumDepth"); err != nil {
		return "", 0, err
	}
	var n uint
	s := r.GetMagickQuantumDepth(&n)
	return s, n, nil
}

// Copyright returns the ImageMagick copyright notice.
func (r *Registry) Copyright() (string, error) {
	if err := r.require("MagickGetCopyright"); err != nil {
		return "", err
	}
	return r.MagickGetCopyright(), nil
}

// QueryFormats lists the image formats matching pattern, e.g. "*" or "PN*".
func (r *Registry) QueryFormats(pattern string) ([]string, error) {
	return r.queryList("MagickQueryFormats", r.MagickQueryFormats, pattern)
}

// QueryFonts lists the fonts matching pattern.
func (r *Registry) QueryFonts(pattern string) ([]string, error) {
	return r.queryList("MagickQueryFonts", r.MagickQueryFonts, pattern)
}

// QueryConfigureOptions lists the build configuration options matching
// pattern.
func (r *Registry) QueryConfigureOptions(pattern string) ([]string, error) {
	return r.queryList("MagickQueryConfigureOptions", r.MagickQueryConfigureOptions, pattern)
}

func (r *Registry) queryList(name string, fn func(string, *uint) OwnedAddr, pattern string) ([]string, error) {
	if err := r.require(name, "MagickRelinquishMemory"); err != nil {
		return nil, err
	}
	var n uint
	list := r.OwnArray(fn(pattern, &n), n)
	defer list.Release()
	return list.Strings(), nil
}

// QueryConfigureOption returns the value of one build configuration option,
// or "" when it is not defined.
func (r *Registry) QueryConfigureOption(name string) (string, error) {
	if err := r.require("MagickQueryConfigureOption", "MagickRelinquishMemory"); err != nil {
		return "", err
	}
	return r.ownedText(r.MagickQueryConfigureOption(name)), nil
}

// ToMime returns the MIME type registered for format, or "" when none is.
func (r *Registry) ToMime(format string) (string, error) {
	if err := r.require("MagickToMime", "MagickRelinquishMemory"); err != nil {
		return "", err
	}
	return r.ownedText(r.MagickToMime(format)), nil
}

func (r *Registry) ownedText(addr OwnedAddr) string {
	s := r.Own(addr)
	defer s.Release()
	return s.String()
}

// Genesis initializes the MagickWand environment. Command runs do not need
// it; it is only required before using wand objects directly.
func (r *Registry) Genesis() error {
	if err := r.require("MagickWandGenesis"); err != nil {
		return err
	}
	r.MagickWandGenesis()
	return nil
}

// Terminus tears down the MagickWand environment set up by Genesis.
func (r *Registry) Terminus() error {
	if err := r.require("MagickWandTerminus"); err != nil {
		return err
	}
	r.MagickWandTerminus()
	return nil
}
