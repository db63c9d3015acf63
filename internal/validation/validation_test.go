package validation

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	baseDir := "/tmp/test"

	tests := []struct {
		name      string
		userPath  string
		want      string
		wantError error
	}{
		{"simple valid path", "file.xml", "file.xml", nil},
		{"nested valid path", "subdir/file.xml", filepath.Join("subdir", "file.xml"), nil},
		{"path with dot component", "./file.xml", "file.xml", nil},
		{"path traversal with dotdot", "../etc/passwd", "", ErrPathTraversal},
		{"path traversal in middle", "subdir/../../etc/passwd", "", ErrPathTraversal},
		{"absolute path", "/etc/passwd", "", ErrPathTraversal},
		{"empty path", "", "", ErrEmptyPath},
		{"too long", strings.Repeat("a", MaxPathLength+1), "", ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(baseDir, tt.userPath)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("SanitizePath() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizePath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SanitizePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"plain", "A00001.xml", false},
		{"empty", "", true},
		{"dotdot", "..", true},
		{"separator", "a/b.xml", true},
		{"control", "a\x01.xml", true},
		{"hyphen", "-rf.xml", true},
		{"too long", strings.Repeat("a", MaxFilenameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateFilename(tt.filename); (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("texts/A00001.xml"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
	if err := ValidatePath("a\x00b"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("expected ErrInvalidCharacter, got %v", err)
	}
}

func TestDocumentBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"A00001.xml", "A00001"},
		{"texts/A00001.xml.xz", "A00001"},
		{"/data/shakespeare.ham.xml.GZ", "shakespeare.ham"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := DocumentBaseName(tt.path); got != tt.want {
			t.Errorf("DocumentBaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidateIDPrefix(t *testing.T) {
	valid := []string{"", "A00001", "_x", "shakespeare.ham-1", "été"}
	for _, p := range valid {
		if err := ValidateIDPrefix(p); err != nil {
			t.Errorf("ValidateIDPrefix(%q) unexpected error: %v", p, err)
		}
	}

	invalid := []string{"1abc", "-x", "a b", "a:b"}
	for _, p := range invalid {
		if err := ValidateIDPrefix(p); !errors.Is(err, ErrInvalidIDPrefix) {
			t.Errorf("ValidateIDPrefix(%q) = %v, want ErrInvalidIDPrefix", p, err)
		}
	}
}

func TestCheckDocumentHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		filename string
		wantErr  bool
	}{
		{"xml text", []byte(`<?xml version="1.0"?><TEI>`), "a.xml", false},
		{"empty", nil, "a.xml", false},
		{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, "a.xml.xz", false},
		{"gzip", []byte{0x1f, 0x8b, 0x08}, "a.xml.gz", false},
		{"xz named xml", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, "a.xml", true},
		{"text named gz", []byte("<TEI/>"), "a.xml.gz", true},
		{"binary", []byte{0x00, 0x01, 0x02}, "a.xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDocumentHeader(tt.header, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckDocumentHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrContentMismatch) {
				t.Errorf("expected ErrContentMismatch, got %v", err)
			}
		})
	}
}
