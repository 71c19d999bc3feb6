package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kostushka/feedback_server/internal/log"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestServeAndShutdown(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "html"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, "html", "index.html"), []byte("index"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New("127.0.0.1:0", root, 1<<20)

	l, err := s.Listen()
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- s.Serve(ctx, l)
	}()

	base := "http://" + l.Addr().String()

	res, err := http.Get(base + "/")
	if err != nil {
		t.Fatal(err)
	}

	body, _ := io.ReadAll(res.Body)
	res.Body.Close()

	if res.StatusCode != http.StatusOK || string(body) != "index" {
		t.Errorf("got %d %q", res.StatusCode, body)
	}

	res, err = http.PostForm(base+"/submit", url.Values{
		"companyName":     {"Acme"},
		"contactMethod[]": {"Email", "Phone"},
	})
	if err != nil {
		t.Fatal(err)
	}

	body, _ = io.ReadAll(res.Body)
	res.Body.Close()

	if res.StatusCode != http.StatusOK || !strings.Contains(string(body), "Email, Phone") {
		t.Errorf("got %d %q", res.StatusCode, body)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	if _, err := http.Get(base + "/"); err == nil {
		t.Error("server still accepts connections")
	}
}

func TestListenAddrInUse(t *testing.T) {
	first := New("127.0.0.1:0", ".", 0)

	l, err := first.Listen()
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	_, err = New(l.Addr().String(), ".", 0).Listen()
	if !errors.Is(err, ErrAddrInUse) {
		t.Errorf("got %v, want ErrAddrInUse", err)
	}
}

func TestNextDelay(t *testing.T) {
	d := nextDelay(0)
	if d != 5*time.Millisecond {
		t.Errorf("got %v", d)
	}

	for i := 0; i < 20; i++ {
		d = nextDelay(d)
	}

	if d != maxAcceptDelay {
		t.Errorf("got %v, want %v", d, maxAcceptDelay)
	}
}
