package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Writer writes a possibly compressed file.
type Writer struct {
	io.Writer
	file       *os.File
	compressor io.Closer
}

// Create creates path for writing, compressing as its suffix implies.
// If createParentDir is true, parent directories of path are created.
func Create(path string, createParentDir bool) (*Writer, error) {
	if createParentDir {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := &Writer{Writer: f, file: f}
	switch Detect(path) {
	case XZ:
		xzw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		w.Writer, w.compressor = xzw, xzw
	case Gzip:
		gzw := gzip.NewWriter(f)
		w.Writer, w.compressor = gzw, gzw
	}
	return w, nil
}

// Close flushes the compressor and closes the file.
func (w *Writer) Close() error {
	var first error
	if w.compressor != nil {
		first = w.compressor.Close()
	}
	if err := w.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
