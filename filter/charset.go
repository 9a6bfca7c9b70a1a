package filter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrEncoding is returned when input cannot be read as text in the expected
// character set.
var ErrEncoding = errors.New("input is not valid text")

// codec converts file content to UTF-8 for line splitting and back. For UTF-8
// files content is only validated, bytes are never rewritten.
type codec struct {
	name string
	enc  encoding.Encoding
}

func newCodec(charset string) (*codec, error) {
	charset = strings.TrimSpace(charset)
	if len(charset) == 0 {
		return &codec{name: "UTF-8"}, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q is not supported", charset)
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = charset
	}
	if enc == unicode.UTF8 {
		return &codec{name: name}, nil
	}
	return &codec{name: name, enc: enc}, nil
}

func (c *codec) decode(data []byte, src string) ([]byte, error) {
	if c.enc != nil {
		out, err := c.enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to decode %s as %s: %v", ErrEncoding, src, c.name, err)
		}
		return out, nil
	}
	if utf8.Valid(data) {
		return data, nil
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return nil, fmt.Errorf("%w: %s looks like %s (%s) and not like %s", ErrEncoding, src, kind.MIME.Value, kind.Extension, c.name)
	}
	return nil, fmt.Errorf("%w: %s has invalid %s sequence at offset %d", ErrEncoding, src, c.name, invalidOffset(data))
}

func (c *codec) encode(data []byte) ([]byte, error) {
	if c.enc == nil {
		return data, nil
	}
	return c.enc.NewEncoder().Bytes(data)
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
