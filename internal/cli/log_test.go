package cli

import (
	"bytes"
	"context"
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
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestVerboseLogging(t *testing.T) {
	tc := newTestCLI(t, "graph LR\nA --> B\n")
	tc.SetLogLevel(LogDebug)
	if err := tc.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(tc.stderr.String(), "computed layout") {
		t.Errorf("debug log missing pipeline stages:\n%s", tc.stderr.String())
	}
}
