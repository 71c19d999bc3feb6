package file

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Open(filepath.Join(dir, "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}

	if _, _, err := Open(dir); !errors.Is(err, ErrIsDir) {
		t.Errorf("got %v, want ErrIsDir", err)
	}

	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("abc"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, fi, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if fi.Size() != 3 {
		t.Errorf("got size %d", fi.Size())
	}
}

func TestSendIsByteExact(t *testing.T) {
	// больше одного буфера и с нулевыми байтами
	data := make([]byte, 3*4096+17)
	for i := range data {
		data[i] = byte(i * 7)
	}

	p := filepath.Join(t.TempDir(), "blob.png")
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}

	f, _, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := Send(&buf, f); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("sent bytes differ from the file")
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"valid", []byte("Привіт, світ"), "Привіт, світ"},
		{"invalid", []byte{'a', 0xff, 'b'}, "a�b"},
	}

	for _, tt := range tests {
		p := filepath.Join(dir, tt.name+".html")
		if err := os.WriteFile(p, tt.in, 0o600); err != nil {
			t.Fatal(err)
		}

		f, _, err := Open(p)
		if err != nil {
			t.Fatal(err)
		}

		got, err := ReadText(f)
		f.Close()

		if err != nil {
			t.Fatal(err)
		}

		if string(got) != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
