// Package wide converts Go strings into the NUL-terminated UTF-16 buffers
// expected by wide-character Windows entry points.
package wide

import (
	"errors"
	"strings"
	"unicode/utf16"
)

// ErrEmbeddedNul is returned for text that contains a NUL character. Such
// text would be silently truncated by the callee.
var ErrEmbeddedNul = errors.New("text contains a NUL character")

// Encode returns a freshly allocated UTF-16 copy of s followed by a single
// terminating zero. Invalid UTF-8 sequences become U+FFFD.
//
// The caller owns the returned slice and must keep it referenced until every
// foreign call that reads its address has returned.
func Encode(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, ErrEmbeddedNul
	}

	buf := utf16.Encode([]rune(s))
	return append(buf, 0), nil
}

// EncodeOptional is Encode for optional values: the empty string yields a
// nil buffer, which callers pass as a null pointer.
func EncodeOptional(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	return Encode(s)
}

// Decode converts a UTF-16 buffer back into a string, stopping at the first
// zero element.
func Decode(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
