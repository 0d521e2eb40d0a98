package e4b

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newBankServer(t *testing.T, path string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetchBank(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testBank()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	srv := newBankServer(t, "/banks/lead.e4b", buf.Bytes())
	ctx := context.Background()

	b, err := NewClient("", 5*time.Second).FetchBank(ctx, srv.URL+"/banks/lead.e4b")
	if err != nil {
		t.Fatalf("FetchBank(absolute): %v", err)
	}
	if len(b.Presets()) != 2 {
		t.Errorf("presets = %d, want 2", len(b.Presets()))
	}

	// 相対パスはベースURLと結合される
	b, err = NewClient(srv.URL+"/banks", 5*time.Second).FetchBank(ctx, "lead.e4b")
	if err != nil {
		t.Fatalf("FetchBank(relative): %v", err)
	}
	if len(b.Samples()) != 1 {
		t.Errorf("samples = %d, want 1", len(b.Samples()))
	}
}

func TestClientFetchCorruptBank(t *testing.T) {
	srv := newBankServer(t, "/bad.e4b", []byte("not a bank at all"))

	_, err := NewClient("", 5*time.Second).FetchBank(context.Background(), srv.URL+"/bad.e4b")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	var fetchErr *ErrFetch
	if errors.As(err, &fetchErr) {
		t.Error("a corrupt body was reported as a fetch error")
	}
}

func TestClientRejectsUnsupportedURL(t *testing.T) {
	c := NewClient("", time.Second)
	for _, ref := range []string{"ftp://example.com/a.e4b", "relative/a.e4b", "http://[::1"} {
		var fetchErr *ErrFetch
		if _, err := c.FetchBank(context.Background(), ref); !errors.As(err, &fetchErr) {
			t.Errorf("FetchBank(%q) err = %v, want *ErrFetch", ref, err)
		}
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/a.e4b", true},
		{"http://localhost:8080/a.e4b", true},
		{"banks/a.e4b", false},
		{"/tmp/http.e4b", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.in); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
