package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", LogInfo, func(l *log.Logger) { l.Info("Loaded words") }, true},
		{"debug at info level", LogInfo, func(l *log.Logger) { l.Debug("Built trie") }, false},
		{"debug at debug level", LogDebug, func(l *log.Logger) { l.Debug("Built trie") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel(LogDebug): %q", buf.String())
	}
}

func TestLoadWordsLogsProgress(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(dict, []byte("cat\ncats\n\nscat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)

	words, err := c.loadWords(ctx, dictOpts{source: dict, noCache: true})
	if err != nil {
		t.Fatalf("loadWords() error: %v", err)
	}
	if len(words) != 3 {
		t.Errorf("loadWords() = %v, want 3 words", words)
	}
	if !strings.Contains(buf.String(), "Loaded 3 words from "+dict) {
		t.Errorf("progress line missing from log: %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}
