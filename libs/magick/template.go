package magick

import (
	"fmt"
	"strings"
)

// expand substitutes {name} fields in tmpl with values. "{{" and "}}" stand
// for literal braces. An unknown or empty field name is an error.
func expand(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unmatched '{' at offset %d", ErrInvalidArguments, i)
			}
			name := tmpl[i+1 : i+1+end]
			if name == "" {
				return "", fmt.Errorf("%w: empty field at offset %d", ErrInvalidArguments, i)
			}
			v, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: no value for field %q", ErrInvalidArguments, name)
			}
			b.WriteString(v)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrInvalidArguments, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
