// Package archive is a thin adapter over archive/zip for reading a
// corpus's translation units out of a ZIP container: open once, list
// entries, read each fully into memory.
//
// No third-party ZIP library appears anywhere in the example corpus this
// module was built from, so this is a deliberate exception to "prefer a
// library": archive/zip is the only candidate, and the spec itself
// treats the ZIP format as something merely "consumed as an archive
// abstraction" rather than a component to source externally.
package archive

import (
	"archive/zip"
	"io"
)

// chunkSize is how much an entry's read buffer grows by each time it
// fills up.
const chunkSize = 64 * 1024

// Archive is an opened ZIP container.
type Archive struct {
	r *zip.ReadCloser
}

// Open opens path as a ZIP archive.
func Open(path string) (*Archive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &Archive{r: r}, nil
}

// Close releases the archive's underlying file handle.
func (a *Archive) Close() error {
	return a.r.Close()
}

// Entries returns the archive's entries in archive order.
func (a *Archive) Entries() []*zip.File {
	return a.r.File
}

// ReadAll reads an entry's full content, growing its buffer 64 KiB at a
// time.
func ReadAll(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf := make([]byte, 0, chunkSize)
	for {
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), cap(buf)+chunkSize)
			copy(grown, buf)
			buf = grown
		}
		n, err := rc.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return nil, err
		}
	}
}
