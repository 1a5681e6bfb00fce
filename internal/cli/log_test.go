package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerStageOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	// Key-value pairs the way the pipeline logs its stages.
	logger.Info("rendered artifact", "format", "png", "bytes", 1423)

	out := buf.String()
	if !strings.Contains(out, "rendered artifact") {
		t.Errorf("output %q should contain the stage message", out)
	}
	if !strings.Contains(out, "format=png") {
		t.Errorf("output %q should contain the format pair", out)
	}
}

func TestNewLoggerVerboseLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "stage info at default level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("persisted artifact", "path", "banana.png") },
			wantLog: true,
		},
		{
			name:    "debug hidden without --verbose",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("cache key", "key", "abc") },
			wantLog: false,
		},
		{
			name:    "debug shown with --verbose",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("cache key", "key", "abc") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered 42 identicons")

	out := buf.String()
	if !strings.Contains(out, "Rendered 42 identicons (") {
		t.Errorf("output %q should contain the message with elapsed time", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	retrieved := loggerFromContext(ctx)
	if retrieved != logger {
		t.Fatal("loggerFromContext should return the logger attached by the root command")
	}

	retrieved.Info("derived descriptor", "color", "#72b302")
	if !strings.Contains(buf.String(), "#72b302") {
		t.Error("retrieved logger should write to the original buffer")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	// Commands must get a usable logger even if root setup never ran.
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}
