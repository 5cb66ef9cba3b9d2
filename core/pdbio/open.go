// core/pdbio/open.go
package pdbio

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// mmapReadCloser serves a memory-mapped file through a bytes.Reader and
// unmaps on Close.
type mmapReadCloser struct {
	*bytes.Reader
	mm mmap.MMap
	fh *os.File
}

func (m *mmapReadCloser) Close() error {
	err := m.mm.Unmap()
	if cerr := m.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open returns a reader for a PDB input path. "-" means stdin. Gzip input is
// detected by magic number (1F 8B) or .gz suffix and decompressed
// transparently. Plain regular files are memory-mapped; when mapping fails
// (zero-length files, exotic filesystems) the plain file handle is used
// instead.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	if mm, err := mmap.Map(fh, mmap.RDONLY, 0); err == nil {
		return &mmapReadCloser{Reader: bytes.NewReader(mm), mm: mm, fh: fh}, nil
	}
	return fh, nil
}
