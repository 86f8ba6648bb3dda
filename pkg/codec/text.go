package codec

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeName reads a fixed-width, NUL-terminated ISO-8859-1 name.
// A name that fills the whole buffer carries no terminator.
func decodeName(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	// every byte maps to a rune in ISO-8859-1, so this cannot fail
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	return string(s)
}

// encodeName converts name into exactly size bytes, zero-filled
func encodeName(field, name string, size int) ([]byte, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return nil, &TextEncodingError{Field: field, Value: name, Reason: "contains NUL"}
	}
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, &TextEncodingError{Field: field, Value: name, Reason: "not representable in ISO-8859-1"}
	}
	if len(raw) > size {
		return nil, &TextEncodingError{Field: field, Value: name, Reason: "longer than buffer"}
	}
	out := make([]byte, size)
	copy(out, raw)
	return out, nil
}
