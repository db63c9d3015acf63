// Package archive opens documents that may be stored compressed.
// Compression is chosen by file suffix: .xz, .gz or none.
package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// Compression identifies a supported compression format.
type Compression int

const (
	// None is an uncompressed file.
	None Compression = iota
	// Gzip is a .gz file.
	Gzip
	// XZ is a .xz file.
	XZ
)

// Detect returns the compression implied by the path suffix.
func Detect(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return XZ
	case strings.HasSuffix(lower, ".gz"):
		return Gzip
	default:
		return None
	}
}

// TrimSuffix removes a compression suffix, so "a.xml.xz" becomes "a.xml".
func TrimSuffix(path string) string {
	switch Detect(path) {
	case XZ, Gzip:
		return path[:strings.LastIndexByte(path, '.')]
	default:
		return path
	}
}

// Reader reads a possibly compressed file.
type Reader struct {
	io.Reader
	file         *os.File
	decompressor io.Closer
}

// Open opens path for reading, decompressing as its suffix implies.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch Detect(path) {
	case XZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
		decompressor = nil // xz reader doesn't need closing
	case Gzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{
		Reader:       reader,
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the reader and any underlying decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ReadFile reads a whole possibly compressed file.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}
