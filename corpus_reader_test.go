package abixml

import (
	"archive/zip"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCorpusFromReader(t *testing.T) {
	corp, err := ReadCorpusFromReader(strings.NewReader(`<abi-corpus path="/lib.so">
		<abi-instr path="/a.cc"><type-decl name="int" id="t1" size-in-bits="32"/></abi-instr>
		<abi-instr path="/b.cc"><type-decl name="char" id="t1" size-in-bits="8"/></abi-instr>
	</abi-corpus>`))
	require.NoError(t, err)
	require.NotNil(t, corp)

	assert.Equal(t, "/lib.so", corp.Path())
	units := corp.TranslationUnits()
	require.Len(t, units, 2)
	assert.Equal(t, "/a.cc", units[0].Path())
	assert.Equal(t, "/b.cc", units[1].Path())

	// The type table resets between translation units: "t1" in the
	// second abi-instr must not collide with "t1" keyed in the first.
	assert.Len(t, units[0].GlobalScope().Members(), 1)
	assert.Len(t, units[1].GlobalScope().Members(), 1)
}

func TestReadCorpusFromReader_WrongRootFails(t *testing.T) {
	_, err := ReadCorpusFromReader(strings.NewReader(`<abi-instr/>`))
	require.Error(t, err)
}

// S6: a ZIP archive with two entries, each a minimal abi-instr with a
// distinct path attribute; the reader must use the attribute, not the
// entry name, and report a count of 2.
func TestReadCorpusFromArchive(t *testing.T) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	w1, err := zw.Create("entry-one.xml")
	require.NoError(t, err)
	_, err = w1.Write([]byte(`<abi-instr path="/first.cc" address-size="8"/>`))
	require.NoError(t, err)

	w2, err := zw.Create("entry-two.xml")
	require.NoError(t, err)
	_, err = w2.Write([]byte(`<abi-instr path="/second.cc" address-size="8"/>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())

	archivePath := writeTempFile(t, buf.Bytes())
	corp, n := ReadCorpusFromArchive(archivePath)
	require.Equal(t, 2, n)
	require.NotNil(t, corp)

	units := corp.TranslationUnits()
	require.Len(t, units, 2)
	assert.Equal(t, "/first.cc", units[0].Path())
	assert.Equal(t, "/second.cc", units[1].Path())
}

func TestReadCorpusFromArchive_MissingFileFails(t *testing.T) {
	corp, n := ReadCorpusFromArchive("/no/such/archive.zip")
	assert.Nil(t, corp)
	assert.Equal(t, -1, n)
}

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	f := t.TempDir() + "/corpus.zip"
	require.NoError(t, os.WriteFile(f, data, 0o644))
	return f
}
