package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWithID(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	defer func() {
		if err := New(""); err != nil {
			t.Error(err)
		}
	}()

	l := WithID("abc")
	l.Infof("файл %q отправлен", "a.css")
	l.Error(errors.New("boom"))
	l.Info("100% без форматирования")
	l.Error(errors.New("first"), " ", 42)
	l.Errorf("код %d: %v", 500, errors.New("boom"))
	Infof("без идентификатора %d", 7)
	Error(errors.New("plain"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	want := []struct {
		prefix, suffix string
	}{
		{"INFO: ", `[abc] файл "a.css" отправлен`},
		{"ERROR: ", "[abc] boom"},
		{"INFO: ", "[abc] 100% без форматирования"},
		{"ERROR: ", "[abc] first 42"},
		{"ERROR: ", "[abc] код 500: boom"},
		{"INFO: ", "без идентификатора 7"},
		{"ERROR: ", "plain"},
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, want[i].prefix) || !strings.HasSuffix(line, want[i].suffix) {
			t.Errorf("line %d: got %q, want %q...%q", i, line, want[i].prefix, want[i].suffix)
		}
	}
}

func TestNewWithFile(t *testing.T) {
	p := t.TempDir() + "/server.log"
	if err := New(p); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if err := New(""); err != nil {
			t.Error(err)
		}
	}()

	Errorf("ошибка %d", 42)
}
