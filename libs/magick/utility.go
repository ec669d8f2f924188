package magick

// Utility is one of the command-line programs bundled with ImageMagick that
// MagickCommandGenesis can run in-process.
type Utility int

const (
	Animate Utility = iota
	Compare
	Composite
	Conjure
	Convert
	Display
	Identify
	Import
	Mogrify
	Stream

	utilityCount
)

var utilityNames = [utilityCount]string{
	Animate:   "animate",
	Compare:   "compare",
	Composite: "composite",
	Conjure:   "conjure",
	Convert:   "convert",
	Display:   "display",
	Identify:  "identify",
	Import:    "import",
	Mogrify:   "mogrify",
	Stream:    "stream",
}

// Utilities returns every utility in declaration order.
func Utilities() []Utility {
	out := make([]Utility, 0, utilityCount)
	for u := Animate; u < utilityCount; u++ {
		out = append(out, u)
	}
	return out
}

// ParseUtility maps a command name such as "convert" to its Utility.
func ParseUtility(name string) (Utility, error) {
	for u, n := range utilityNames {
		if n == name {
			return Utility(u), nil
		}
	}
	return 0, &UnknownUtilityError{Name: name}
}

func (u Utility) String() string {
	if u < 0 || u >= utilityCount {
		return "unknown"
	}
	return utilityNames[u]
}

// Symbol is the exported MagickWand entry point implementing u.
func (u Utility) Symbol() string {
	switch u {
	case Animate:
		return "AnimateImageCommand"
	case Compare:
		return "CompareImageCommand"
	case Composite:
		return "CompositeImageCommand"
	case Conjure:
		return "ConjureImageCommand"
	case Convert:
		return "ConvertImageCommand"
	case Display:
		return "DisplayImageCommand"
	case Identify:
		return "IdentifyImageCommand"
	case Import:
		return "ImportImageCommand"
	case Mogrify:
		return "MogrifyImageCommand"
	case Stream:
		return "StreamImageCommand"
	}
	return ""
}

// Interactive reports whether u runs an X11 event loop and blocks until the
// user closes its window.
func (u Utility) Interactive() bool {
	return u == Animate || u == Display || u == Import
}
