package magick

// PointInfo mirrors MagickCore's PointInfo.
type PointInfo struct {
	X, Y float64
}

// AffineMatrix mirrors MagickCore's AffineMatrix.
type AffineMatrix struct {
	SX, RX, RY, SY, TX, TY float64
}

// MagickPixelPacket mirrors the ImageMagick 6 MagickPixelPacket layout. It is
// passed by address (unsafe.Pointer(&p)) to PixelGetMagickColor and
// PixelSetMagickColor.
type MagickPixelPacket struct {
	StorageClass int32
	Colorspace   int32
	Matte        int32
	Fuzz         float64
	Depth        uint
	Red          float64
	Green        float64
	Blue         float64
	Opacity      float64
	Index        float64
}

type libraryKind int

const (
	libWand libraryKind = iota
	libCore
	libC
)

func (k libraryKind) String() string {
	switch k {
	case libWand:
		return "MagickWand"
	case libCore:
		return "MagickCore"
	case libC:
		return "libc"
	}
	return "unknown"
}
