package abixml

import (
	"io"

	"github.com/xabi-project/abixml/internal/archive"
	"github.com/xabi-project/abixml/internal/build"
	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// FillCorpusFromFile reads the abi-corpus document at path into corp,
// returning whether the read succeeded.
func FillCorpusFromFile(path string, corp *ir.Corpus) bool {
	cur, err := xmlcursor.NewFromFile(path)
	if err != nil {
		return false
	}
	return fillCorpusFromCursor(cur, corp) == nil
}

// ReadCorpusFromFile reads the abi-corpus document at path and returns
// the resulting corpus, or nil and the failure.
func ReadCorpusFromFile(path string) (*ir.Corpus, error) {
	cur, err := xmlcursor.NewFromFile(path)
	if err != nil {
		return nil, err
	}
	return readCorpusFromCursor(cur)
}

// FillCorpusFromReader reads an abi-corpus document fully from r into
// corp, returning whether the read succeeded.
func FillCorpusFromReader(r io.Reader, corp *ir.Corpus) bool {
	raw, err := io.ReadAll(r)
	if err != nil {
		return false
	}
	cur, err := xmlcursor.NewFromBuffer(raw)
	if err != nil {
		return false
	}
	return fillCorpusFromCursor(cur, corp) == nil
}

// ReadCorpusFromReader reads an abi-corpus document fully from r and
// returns the resulting corpus, or nil and the failure.
func ReadCorpusFromReader(r io.Reader) (*ir.Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cur, err := xmlcursor.NewFromBuffer(raw)
	if err != nil {
		return nil, err
	}
	return readCorpusFromCursor(cur)
}

func fillCorpusFromCursor(cur *xmlcursor.Cursor, corp *ir.Corpus) error {
	return asParseError(build.ReadCorpus(cur, corp))
}

func readCorpusFromCursor(cur *xmlcursor.Cursor) (*ir.Corpus, error) {
	corp := ir.NewCorpus()
	if err := fillCorpusFromCursor(cur, corp); err != nil {
		return nil, err
	}
	return corp, nil
}

// FillCorpusFromArchive opens path as a ZIP archive and reads each
// entry as a standalone abi-instr document, appending the resulting
// translation units to corp in archive order. It returns the count of
// translation units successfully read, or -1 if the archive itself
// could not be opened. A failure reading or parsing one entry aborts
// the whole read (per spec 7's "first failure aborts" policy): any
// translation units already appended from earlier entries remain in
// corp, but the entry that failed and everything after it are not
// read.
func FillCorpusFromArchive(path string, corp *ir.Corpus) int {
	a, err := archive.Open(path)
	if err != nil {
		return -1
	}
	defer a.Close()

	n := 0
	for _, entry := range a.Entries() {
		raw, err := archive.ReadAll(entry)
		if err != nil {
			return n
		}
		cur, err := xmlcursor.NewFromBuffer(raw)
		if err != nil {
			return n
		}
		tu := ir.NewTranslationUnit()
		ctx := rctx.New(cur, tu)
		if err := build.ReadTranslationUnit(ctx); err != nil {
			return n
		}
		if tu.Path() == "" {
			tu.SetPath(entry.Name)
		}
		corp.AddTranslationUnit(tu)
		n++
	}
	return n
}

// ReadCorpusFromArchive is FillCorpusFromArchive constructing and
// returning its own corpus. It returns a nil corpus alongside a
// negative count only when the archive itself could not be opened;
// a partial read still returns the corpus built so far together with
// the count of translation units it holds.
func ReadCorpusFromArchive(path string) (*ir.Corpus, int) {
	corp := ir.NewCorpus()
	n := FillCorpusFromArchive(path, corp)
	if n < 0 {
		return nil, n
	}
	return corp, n
}
