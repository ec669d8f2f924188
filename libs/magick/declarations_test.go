package magick

import (
	"reflect"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiField(t *testing.T, name string) reflect.Type {
	t.Helper()
	f, ok := reflect.TypeOf(API{}).FieldByName(name)
	require.True(t, ok, name)
	return f.Type
}

func TestSizeTParametersArePointerWide(t *testing.T) {
	sizeT := unsafe.Sizeof(uintptr(0))
	tests := []struct {
		name   string
		params []int
	}{
		{"MagickGetSize", []int{1, 2}},
		{"MagickSetSize", []int{1, 2}},
		{"MagickGetQuantumRange", []int{0}},
		{"GetMagickVersion", []int{0}},
		{"MagickQueryFormats", []int{1}},
	}

	for _, tt := range tests {
		fn := apiField(t, tt.name)
		for _, i := range tt.params {
			p := fn.In(i)
			if p.Kind() == reflect.Pointer {
				p = p.Elem()
			}
			assert.Equal(t, sizeT, p.Size(), "%s parameter %d", tt.name, i)
		}
	}
}

func TestMagickGetSizeKeepsNeighbours(t *testing.T) {
	r := openTestRegistry(t, map[string]any{
		"MagickGetSize": func(wand uintptr, cols, rows *uint) int32 {
			*cols = 640
			*rows = 480
			return 1
		},
	}, nil)
	require.True(t, r.Has("MagickGetSize"))

	var s struct {
		cols, rows     uint
		guard1, guard2 uint32
	}
	s.guard1, s.guard2 = 0xdead, 0xbeef

	assert.Equal(t, int32(1), r.MagickGetSize(0, &s.cols, &s.rows))
	assert.Equal(t, uint(640), s.cols)
	assert.Equal(t, uint(480), s.rows)
	assert.Equal(t, uint32(0xdead), s.guard1)
	assert.Equal(t, uint32(0xbeef), s.guard2)
}

func TestAllocatedStringsAreOwned(t *testing.T) {
	owned := reflect.TypeOf(OwnedAddr(0))
	for _, name := range []string{
		"MagickGetFont",
		"MagickGetOption",
		"MagickIdentifyImage",
		"MagickGetImageFormat",
		"MagickGetImageProperty",
		"MagickGetImageSignature",
		"MagickToMime",
		"DrawGetFont",
		"PixelGetColorAsString",
	} {
		fn := apiField(t, name)
		require.Equal(t, 1, fn.NumOut(), name)
		assert.Equal(t, owned, fn.Out(0), name)
	}

	for _, name := range []string{"MagickGetCopyright", "GetMagickReleaseDate", "GetMagickVersion", "MagickGetQuantumRange"} {
		assert.Equal(t, reflect.String, apiField(t, name).Out(0).Kind(), name)
	}
}

func TestOwnedReturnsAreRelinquished(t *testing.T) {
	font := cbuf("Helvetica")
	option := cbuf("true")
	identity := cbuf("Image: rose.png")
	rec := &relinquishRecorder{}
	r := openTestRegistry(t, map[string]any{
		"MagickGetFont":       func(uintptr) OwnedAddr { return OwnedAddr(addrOf(font)) },
		"MagickGetOption":     func(uintptr, string) OwnedAddr { return OwnedAddr(addrOf(option)) },
		"MagickIdentifyImage": func(uintptr) OwnedAddr { return OwnedAddr(addrOf(identity)) },
		"MagickRelinquishMemory": func(addr uintptr) uintptr {
			rec.relinquish(addr)
			return 0
		},
	}, nil)

	for _, s := range []*OwnedString{
		r.Own(r.MagickGetFont(0)),
		r.Own(r.MagickGetOption(0, "png:exclude-chunk")),
		r.Own(r.MagickIdentifyImage(0)),
	} {
		assert.NotEmpty(t, s.String())
		s.Release()
	}

	assert.Equal(t, []uintptr{addrOf(font), addrOf(option), addrOf(identity)}, rec.calls())
	runtime.KeepAlive(font)
	runtime.KeepAlive(option)
	runtime.KeepAlive(identity)
}
