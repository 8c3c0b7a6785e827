package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileLogger_WritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "remind.log")

	logger, closeLog, err := NewFileLogger(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info("reminder loop started", "interval", "30m")
	logger.Debug("suppressed below level")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "reminder loop started") {
		t.Errorf("log file missing info entry: %q", content)
	}
	if strings.Contains(string(content), "suppressed below level") {
		t.Errorf("debug entry written despite info level: %q", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
