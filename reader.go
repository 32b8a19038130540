package abixml

import (
	"io"

	"github.com/xabi-project/abixml/internal/build"
	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// FillTranslationUnitFromFile reads the abi-instr document at path into
// tu, returning whether the read succeeded. tu is left however far the
// reader got on failure: callers that need a guaranteed-empty result on
// failure should use ReadTranslationUnitFromFile instead.
func FillTranslationUnitFromFile(path string, tu *ir.TranslationUnit) bool {
	cur, err := xmlcursor.NewFromFile(path)
	if err != nil {
		return false
	}
	return fillFromCursor(cur, tu) == nil
}

// ReadTranslationUnitFromFile reads the abi-instr document at path and
// returns the resulting translation unit, or nil and the failure.
func ReadTranslationUnitFromFile(path string) (*ir.TranslationUnit, error) {
	cur, err := xmlcursor.NewFromFile(path)
	if err != nil {
		return nil, err
	}
	return readFromCursor(cur)
}

// FillTranslationUnitFromBuffer reads the abi-instr document in buf into
// tu, returning whether the read succeeded.
func FillTranslationUnitFromBuffer(buf []byte, tu *ir.TranslationUnit) bool {
	cur, err := xmlcursor.NewFromBuffer(buf)
	if err != nil {
		return false
	}
	return fillFromCursor(cur, tu) == nil
}

// ReadTranslationUnitFromBuffer reads the abi-instr document in buf and
// returns the resulting translation unit, or nil and the failure.
func ReadTranslationUnitFromBuffer(buf []byte) (*ir.TranslationUnit, error) {
	cur, err := xmlcursor.NewFromBuffer(buf)
	if err != nil {
		return nil, err
	}
	return readFromCursor(cur)
}

// FillTranslationUnitFromReader reads an abi-instr document fully from r
// into tu, returning whether the read succeeded.
func FillTranslationUnitFromReader(r io.Reader, tu *ir.TranslationUnit) bool {
	raw, err := io.ReadAll(r)
	if err != nil {
		return false
	}
	return FillTranslationUnitFromBuffer(raw, tu)
}

// ReadTranslationUnitFromReader reads an abi-instr document fully from r
// and returns the resulting translation unit, or nil and the failure.
func ReadTranslationUnitFromReader(r io.Reader) (*ir.TranslationUnit, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadTranslationUnitFromBuffer(raw)
}

func fillFromCursor(cur *xmlcursor.Cursor, tu *ir.TranslationUnit) error {
	ctx := rctx.New(cur, tu)
	return asParseError(build.ReadTranslationUnit(ctx))
}

func readFromCursor(cur *xmlcursor.Cursor) (*ir.TranslationUnit, error) {
	tu := ir.NewTranslationUnit()
	if err := fillFromCursor(cur, tu); err != nil {
		return nil, err
	}
	return tu, nil
}
