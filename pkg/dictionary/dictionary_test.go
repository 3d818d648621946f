package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridwords/pkg/cache"
	errs "github.com/matzehuels/gridwords/pkg/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lines", "cat\ncats\nact\n", []string{"cat", "cats", "act"}},
		{"crlf", "cat\r\ncats\r\n", []string{"cat", "cats"}},
		{"blank lines", "\ncat\n\n  \ncats", []string{"cat", "cats"}},
		{"trims", "  cat \t\n", []string{"cat"}},
		{"keeps case", "Cat\ncat", []string{"Cat", "cat"}},
		{"keeps duplicates", "cat\ncat", []string{"cat", "cat"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat\ncats\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if diff := cmp.Diff([]string{"cat", "cats"}, got); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
	if _, err := LoadFile(""); !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("empty path: error = %v, want %s", err, errs.ErrCodeInvalidPath)
	}
}

func newTestClient(c cache.Cache) *Client {
	cl := NewClient(c, nil, time.Hour)
	cl.retryDelay = time.Millisecond
	return cl
}

func TestFetch_BodyTooLarge(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("cat\ncats\nscat\n"))
	}))
	defer server.Close()

	store := cache.NewNullCache()
	c := newTestClient(store)
	c.maxBody = 8

	_, err := c.Fetch(context.Background(), server.URL, false)
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Fetch() error = %v, want %s", err, errs.ErrCodeInvalidFormat)
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, oversized bodies should not be retried", calls.Load())
	}

	c.maxBody = int64(len("cat\ncats\nscat\n"))
	data, err := c.Fetch(context.Background(), server.URL, false)
	if err != nil {
		t.Fatalf("Fetch() at exactly the limit: %v", err)
	}
	if string(data) != "cat\ncats\nscat\n" {
		t.Errorf("Fetch() = %q", data)
	}
}

func TestFetch_CachesBody(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("User-Agent") != "gridwords" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("cat\ncats\n"))
	}))
	defer server.Close()

	fc, _ := cache.NewFileCache(t.TempDir())
	c := newTestClient(fc)
	ctx := context.Background()

	for range 2 {
		data, err := c.Fetch(ctx, server.URL, false)
		if err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
		if string(data) != "cat\ncats\n" {
			t.Errorf("Fetch() = %q", data)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}

	if _, err := c.Fetch(ctx, server.URL, true); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("refresh should bypass the cache, server called %d times", calls.Load())
	}
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("cat\n"))
	}))
	defer server.Close()

	data, err := newTestClient(nil).Fetch(context.Background(), server.URL, false)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != "cat\n" || calls.Load() != 3 {
		t.Errorf("Fetch() = %q after %d calls", data, calls.Load())
	}
}

func TestFetch_StatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCode  errs.Code
		wantCalls int32
	}{
		{"not found", http.StatusNotFound, errs.ErrCodeNotFound, 1},
		{"forbidden", http.StatusForbidden, errs.ErrCodeNetwork, 1},
		{"server error", http.StatusInternalServerError, errs.ErrCodeNetwork, retryCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(nil).Fetch(context.Background(), server.URL, false)
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("Fetch() error = %v, want %s", err, tt.wantCode)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("server called %d times, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cat\n\ncats\n"))
	}))
	defer server.Close()

	got, err := Open(context.Background(), server.URL, newTestClient(nil), false)
	if err != nil {
		t.Fatalf("Open(url) error: %v", err)
	}
	if diff := cmp.Diff([]string{"cat", "cats"}, got); diff != "" {
		t.Errorf("Open(url) mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	_ = os.WriteFile(path, []byte("dog\n"), 0o644)
	got, err = Open(context.Background(), path, nil, false)
	if err != nil {
		t.Fatalf("Open(file) error: %v", err)
	}
	if diff := cmp.Diff([]string{"dog"}, got); diff != "" {
		t.Errorf("Open(file) mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckStatus(t *testing.T) {
	if checkStatus(http.StatusOK) != nil {
		t.Error("200 should not be an error")
	}
	if !cache.IsRetryable(checkStatus(http.StatusTooManyRequests)) {
		t.Error("429 should be retryable")
	}
	if !cache.IsRetryable(checkStatus(http.StatusBadGateway)) {
		t.Error("502 should be retryable")
	}
	if cache.IsRetryable(checkStatus(http.StatusBadRequest)) {
		t.Error("400 should not be retryable")
	}
}
