package abixml

import (
	"fmt"

	"github.com/xabi-project/abixml/internal/build"
)

// ParseError reports a schema-mismatch failure: an unexpected root
// element, an unrecognized child tag, or an attribute reference (most
// commonly "type-id") that does not resolve against the current symbol
// table. Two other kinds of malformed input are reported as plain
// errors, not as ParseError: a line/column attribute without a filepath,
// and a symbol-table id keyed twice. I/O failures (file open, archive
// open, entry read, cursor construction) are returned unwrapped from the
// underlying os/
// archive/zip/antchfx/xmlquery call, exactly as fs.TextFile and
// text.ReadTextFile do in the teacher repo for their own I/O layer.
type ParseError struct {
	// Element is the tag name the failure occurred on.
	Element string
	// Attribute is the specific attribute involved, if any; empty when
	// the failure is not attribute-specific (e.g. an unrecognized tag
	// or an unexpected document root).
	Attribute string
	Err       error
}

func (e *ParseError) Error() string {
	switch {
	case e.Element == "":
		return fmt.Sprintf("abixml: %v", e.Err)
	case e.Attribute == "":
		return fmt.Sprintf("abixml: %s: %v", e.Element, e.Err)
	default:
		return fmt.Sprintf("abixml: %s: %s: %v", e.Element, e.Attribute, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// asParseError converts an internal/build.SchemaError into the exported
// ParseError shape; any other error (I/O failures bubbling up from the
// cursor or archive layers) passes through unchanged.
func asParseError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*build.SchemaError); ok {
		return &ParseError{Element: se.Element, Attribute: se.Attribute, Err: se.Err}
	}
	return err
}
