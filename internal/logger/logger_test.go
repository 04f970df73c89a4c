package logger

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
)

const mockLogLevel int8 = 0

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	if logger1 == nil {
		t.Fatal("Get should return a non-nil logger")
	}
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)

	newCtx := WithLogger(ctx, logger)
	if got := FromContext(newCtx); got != logger {
		t.Error("FromContext should return the logger stored by WithLogger")
	}
	if again := WithLogger(newCtx, logger); again != newCtx {
		t.Error("WithLogger should return the same context when the logger is already set")
	}
}

func TestFromContextFallsBackToNoop(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	logger := FromContext(context.Background())
	if logger != GetNoopLogger() {
		t.Errorf("FromContext should return the noop logger, got %T", logger)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected int8
		wantErr  bool
	}{
		{"", 0, false},
		{"info", 0, false},
		{"DEBUG", -1, false},
		{"warn", 1, false},
		{"error", 2, false},
		{"verbose", 0, true},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", test.name, err, test.wantErr)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseLevel(%q) = %d, expected %d", test.name, got, test.expected)
		}
	}
}

func TestIsIgnorableSyncError(t *testing.T) {
	if !isIgnorableSyncError(fmt.Errorf("sync /dev/stderr: %w", syscall.EINVAL)) {
		t.Error("EINVAL should be ignorable")
	}
	if isIgnorableSyncError(errors.New("disk full")) {
		t.Error("arbitrary errors should not be ignorable")
	}
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	logger := GetNoopLogger()
	newLogger := WithValues(logger, CommandKey, "fetch")
	if newLogger == nil {
		t.Fatal("WithValues should return a non-nil logger")
	}
	if newLogger == logger {
		t.Error("WithValues should return a new logger instance, not the original")
	}
}
