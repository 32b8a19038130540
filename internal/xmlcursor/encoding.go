package xmlcursor

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NormalizeToUTF8 strips a leading byte-order mark, transcoding UTF-16
// input to UTF-8 when the mark says UTF-16; input without a mark is
// decoded as UTF-8, so valid UTF-8 comes back unchanged. ABI dumps
// produced by Windows toolchains occasionally carry a BOM, and
// antchfx/xmlquery expects UTF-8 input. Grounded verbatim on
// text/reader.go's newUnicodeReader/ReadTextFile.
func NormalizeToUTF8(b []byte) ([]byte, error) {
	decoder := unicode.UTF8.NewDecoder()
	reader := transform.NewReader(bytes.NewReader(b), unicode.BOMOverride(decoder))
	return io.ReadAll(reader)
}

// NewFromFile reads path fully, normalizes its encoding, and returns a
// Cursor over the result.
func NewFromFile(path string) (*Cursor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromBuffer(raw)
}

// NewFromBuffer normalizes b's encoding and returns a Cursor over the
// result.
func NewFromBuffer(b []byte) (*Cursor, error) {
	normalized, err := NormalizeToUTF8(b)
	if err != nil {
		return nil, err
	}
	return New(bytes.NewReader(normalized))
}
