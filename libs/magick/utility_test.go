package magick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUtility(t *testing.T) {
	tests := []struct {
		name   string
		want   Utility
		symbol string
	}{
		{"animate", Animate, "AnimateImageCommand"},
		{"compare", Compare, "CompareImageCommand"},
		{"composite", Composite, "CompositeImageCommand"},
		{"conjure", Conjure, "ConjureImageCommand"},
		{"convert", Convert, "ConvertImageCommand"},
		{"display", Display, "DisplayImageCommand"},
		{"identify", Identify, "IdentifyImageCommand"},
		{"import", Import, "ImportImageCommand"},
		{"mogrify", Mogrify, "MogrifyImageCommand"},
		{"stream", Stream, "StreamImageCommand"},
	}

	for _, tt := range tests {
		u, err := ParseUtility(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, u)
		assert.Equal(t, tt.name, u.String())
		assert.Equal(t, tt.symbol, u.Symbol())
	}
	assert.Len(t, Utilities(), len(tests))
}

func TestParseUtilityRejects(t *testing.T) {
	for _, name := range []string{"", "Convert", "magick", "resize", " convert"} {
		_, err := ParseUtility(name)
		assert.ErrorIs(t, err, ErrUnknownUtility, name)
	}
}

func TestUtilityInteractive(t *testing.T) {
	var interactive []Utility
	for _, u := range Utilities() {
		if u.Interactive() {
			interactive = append(interactive, u)
		}
	}
	assert.Equal(t, []Utility{Animate, Display, Import}, interactive)
	assert.Equal(t, "unknown", Utility(99).String())
	assert.Empty(t, Utility(-1).Symbol())
}
