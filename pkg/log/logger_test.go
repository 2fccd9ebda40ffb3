package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	}()

	logger := New("test")
	SetLevel(Notice)

	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected notice message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(Notice)

	tests := []struct {
		level    Level
		enabled  []Level
		disabled []Level
	}{
		{Debug, []Level{Debug, Info, Error}, nil},
		{Info, []Level{Info, Notice}, []Level{Debug}},
		{Warning, []Level{Warning, Error}, []Level{Debug, Info, Notice}},
	}

	for _, tt := range tests {
		SetLevel(tt.level)
		for _, l := range tt.enabled {
			if !IsEnabled(l) {
				t.Errorf("level %d: expected %d enabled", tt.level, l)
			}
		}
		for _, l := range tt.disabled {
			if IsEnabled(l) {
				t.Errorf("level %d: expected %d disabled", tt.level, l)
			}
		}
	}
}
