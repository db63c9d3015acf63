package archive

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"a.xml", None},
		{"a.xml.gz", Gzip},
		{"a.XML.XZ", XZ},
		{"dir.xz/a.xml", None},
	}
	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTrimSuffix(t *testing.T) {
	if got := TrimSuffix("texts/a.xml.xz"); got != "texts/a.xml" {
		t.Errorf("TrimSuffix = %q", got)
	}
	if got := TrimSuffix("a.xml"); got != "a.xml" {
		t.Errorf("TrimSuffix = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	content := []byte(`<text><w xml:id="w1">hello</w></text>`)

	for _, name := range []string{"doc.xml", "doc.xml.gz", "doc.xml.xz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)

			w, err := Create(path, true)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if _, err := w.Write(content); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(got) != string(content) {
				t.Errorf("got %q, want %q", got, content)
			}
		})
	}
}

func TestOpenReadsForeignCompressors(t *testing.T) {
	dir := t.TempDir()
	content := "plain text"

	gzPath := filepath.Join(dir, "a.gz")
	f, err := os.Create(gzPath)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	gw := gzip.NewWriter(f)
	io.WriteString(gw, content)
	gw.Close()
	f.Close()

	xzPath := filepath.Join(dir, "a.xz")
	f, err = os.Create(xzPath)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	io.WriteString(xw, content)
	xw.Close()
	f.Close()

	for _, path := range []string{gzPath, xzPath} {
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", path, err)
		}
		if string(got) != content {
			t.Errorf("ReadFile(%s) = %q", path, got)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.xml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.gz")
	if err := os.WriteFile(bad, []byte("not gzip"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Open(bad); err == nil {
		t.Error("expected error for corrupt gzip")
	}
}
