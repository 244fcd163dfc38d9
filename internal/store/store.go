// Package store implements the backing-store reader: random-access fetch
// of a fixed-size page from secondary storage.
package store

import (
	"io"

	"github.com/wechicken456/vmsim/internal/vmerr"
)

// PageSize is the fixed size, in bytes, of a page and of a physical frame.
const PageSize = 256

// MaxPages is the number of pages a backing store may hold; page numbers
// are in [0, MaxPages).
const MaxPages = 256

// Frame is the immutable byte contents of a single resident page.
type Frame [PageSize]byte

// Reader fetches a 256-byte page by page number from a random-access
// source. A *os.File opened read-only satisfies this directly; tests may
// substitute a *bytes.Reader or any other io.ReaderAt.
type Reader struct {
	src io.ReaderAt
}

// New wraps src, the contiguous backing-store image, as a page reader.
func New(src io.ReaderAt) *Reader {
	return &Reader{src: src}
}

// ReadPage returns the PageSize bytes belonging to pageNumber. A
// pageNumber outside [0, MaxPages) is rejected as BackingStoreShort with
// zero bytes read; the reader does not itself enforce an upper bound on
// the backing file's length beyond what io.ReaderAt reports.
func (r *Reader) ReadPage(pageNumber int) (Frame, error) {
	var frame Frame
	if pageNumber < 0 || pageNumber >= MaxPages {
		return frame, vmerr.BackingStoreShort(pageNumber, 0)
	}
	off := int64(pageNumber) * int64(PageSize)
	n, _ := r.src.ReadAt(frame[:], off)
	if n < PageSize {
		return frame, vmerr.BackingStoreShort(pageNumber, n)
	}
	return frame, nil
}
