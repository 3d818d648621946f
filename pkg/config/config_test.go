package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
dictionary = "words.txt"
workers    = 4
timeout    = "5s"
redis_addr = "localhost:6379"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Default()
	want.Dictionary = "words.txt"
	want.Workers = 4
	want.Timeout = 5 * time.Second
	want.RedisAddr = "localhost:6379"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultLocationMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("missing default config should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want errs.Code
	}{
		{"missing explicit", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, errs.ErrCodeFileNotFound},
		{"bad toml", func(t *testing.T) string { return writeConfig(t, "workers = [") }, errs.ErrCodeInvalidFormat},
		{"bad duration", func(t *testing.T) string { return writeConfig(t, `timeout = "soon"`) }, errs.ErrCodeInvalidFormat},
		{"negative workers", func(t *testing.T) string { return writeConfig(t, "workers = -1") }, errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !errs.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != "/tmp/xdg/gridwords/config.toml" {
		t.Errorf("Path() = %q", got)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Workers = 3

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := Load(writeConfig(t, buf.String()))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
