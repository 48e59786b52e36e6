package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := New(Options{Level: tt.level, Output: &buf})
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %v, expected %v", tt.level, got, tt.want)
		}
	}
}

func TestNewWritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Prefix: "arena", Output: &buf})
	logger.Info("fired", "weapon", "pistol")

	out := buf.String()
	if !strings.Contains(out, "arena") || !strings.Contains(out, "weapon=pistol") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestUnknownLevelIsReported(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: "loud", Output: &buf})
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("expected warning mentioning the level, got %q", buf.String())
	}
}
