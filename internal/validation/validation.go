// Package validation checks user-supplied paths and names before the
// annotator reads or writes anything.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on user-supplied names.
const (
	// MaxFilenameLength is the maximum allowed filename length.
	MaxFilenameLength = 255
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTraversal    = errors.New("path traversal detected")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrPathTooLong      = errors.New("path too long")
	ErrFilenameTooLong  = errors.New("filename too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrInvalidIDPrefix  = errors.New("invalid identifier prefix")
	ErrContentMismatch  = errors.New("content does not match file suffix")
)

// SanitizePath validates a path relative to baseDir and ensures it does not
// escape it. Returns the cleaned relative path.
func SanitizePath(baseDir, userPath string) (string, error) {
	if userPath == "" {
		return "", ErrEmptyPath
	}
	if len(userPath) > MaxPathLength {
		return "", ErrPathTooLong
	}

	cleanPath := filepath.Clean(userPath)
	if strings.Contains(cleanPath, "..") {
		return "", ErrPathTraversal
	}
	if filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("%w: absolute path not allowed", ErrPathTraversal)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(baseDir, cleanPath))
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	relPath, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return "", ErrPathTraversal
	}

	return cleanPath, nil
}

// ValidateFilename checks that filename is a single safe path element.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}
	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}
	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}
	for _, r := range filename {
		if r == 0 || unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}
	return nil
}

// ValidatePath checks a path for length limits and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// DocumentBaseName derives the identifier base name from a document path:
// the file name without directories, compression suffix or extension, so
// "texts/A00001.xml.xz" gives "A00001".
func DocumentBaseName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".xz", ".gz"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ValidateIDPrefix checks that prefix can start an XML identifier: a letter
// or underscore followed by letters, digits, ".", "-" or "_".
func ValidateIDPrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	for i, r := range prefix {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '.' || r == '-'):
		default:
			return fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidIDPrefix, r, i, prefix)
		}
	}
	return nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// CheckDocumentHeader checks the first bytes of a document against its
// file suffix: .xz and .gz files must carry their magic bytes, anything
// else must look like text.
func CheckDocumentHeader(header []byte, filename string) error {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		if !bytes.HasPrefix(header, xzMagic) {
			return fmt.Errorf("%w: %s is not xz", ErrContentMismatch, filename)
		}
	case strings.HasSuffix(lower, ".gz"):
		if !bytes.HasPrefix(header, gzipMagic) {
			return fmt.Errorf("%w: %s is not gzip", ErrContentMismatch, filename)
		}
	default:
		if bytes.HasPrefix(header, xzMagic) || bytes.HasPrefix(header, gzipMagic) || !isLikelyText(header) {
			return fmt.Errorf("%w: %s is not plain text", ErrContentMismatch, filename)
		}
	}
	return nil
}

// isLikelyText checks if the buffer contains likely text content.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
		// UTF-8 continuation bytes (0x80-0xBF) and start bytes (0xC0-0xFD) are neutral
	}

	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
