package magick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	values := map[string]string{"source": "in.png", "output": "out.jpg", "size": "64x64"}
	tests := []struct {
		tmpl string
		want string
	}{
		{"convert {source} {output}", "convert in.png out.jpg"},
		{"convert {source} -resize {size} {output}", "convert in.png -resize 64x64 out.jpg"},
		{"identify -format {{%w}} {source}", "identify -format {%w} in.png"},
		{"identify rose:", "identify rose:"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := expand(tt.tmpl, values)
		require.NoError(t, err, tt.tmpl)
		assert.Equal(t, tt.want, got, tt.tmpl)
	}
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		tmpl string
		msg  string
	}{
		{"convert {source", "unmatched"},
		{"convert {} out.png", "empty field"},
		{"convert {missing}", `"missing"`},
		{"convert source} out.png", "single '}'"},
	}

	for _, tt := range tests {
		_, err := expand(tt.tmpl, map[string]string{"source": "in.png"})
		require.ErrorIs(t, err, ErrInvalidArguments, tt.tmpl)
		assert.Contains(t, err.Error(), tt.msg)
	}
}

func TestTokensSplitsValues(t *testing.T) {
	cmd := NewCommand(&fakeNative{}).Bind("convert {source} {output}")
	tokens, err := cmd.Tokens(map[string]string{"source": "a b.png", "output": "c.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"convert", "a", "b.png", "c.png"}, tokens)
}
