package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"logbook/internal/logger"
)

func TestHumanReadableFormat(t *testing.T) {
	ts := time.Unix(1633035745, 0)
	out, err := logger.HumanReadable{}.Transform(ts, logger.Info, "main.go", 42, "hello there")
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if !strings.HasSuffix(out, " INFO       main.go:42 - hello there\n") {
		t.Fatalf("unexpected record shape: %q", out)
	}
	// The label is left-padded to a fixed width of ten.
	if !strings.Contains(out, "INFO      ") {
		t.Fatalf("severity label not padded: %q", out)
	}
	if idx := strings.Index(out, " INFO"); idx < 1 {
		t.Fatalf("expected a timestamp before the label: %q", out)
	}
}

func TestHumanReadableRejectsInvalidInput(t *testing.T) {
	ts := time.Now()
	if _, err := (logger.HumanReadable{}).Transform(ts, 9, "main.go", 1, "msg"); !errors.Is(err, logger.ErrTransform) {
		t.Fatalf("invalid severity error = %v, want ErrTransform", err)
	}
	if _, err := (logger.HumanReadable{}).Transform(ts, logger.Info, "", 1, "msg"); !errors.Is(err, logger.ErrTransform) {
		t.Fatalf("missing file error = %v, want ErrTransform", err)
	}
	if _, err := (logger.HumanReadable{}).Transform(ts, logger.Info, "main.go", 1, ""); !errors.Is(err, logger.ErrTransform) {
		t.Fatalf("missing message error = %v, want ErrTransform", err)
	}
}

func TestTabularFormat(t *testing.T) {
	ts := time.Unix(1633035745, 0)
	out, err := logger.Tabular{}.Transform(ts, logger.Error, "store.go", 7, "boom")
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	want := fmt.Sprintf("%d,error,store.go,7,boom\n", ts.Unix())
	if out != want {
		t.Fatalf("record = %q, want %q", out, want)
	}
}

func TestTabularRejectsInvalidInput(t *testing.T) {
	if _, err := (logger.Tabular{}).Transform(time.Now(), -1, "store.go", 1, "msg"); !errors.Is(err, logger.ErrTransform) {
		t.Fatalf("invalid severity error = %v, want ErrTransform", err)
	}
}

func TestTabularHeaderColumnsMatchRecordShape(t *testing.T) {
	header := strings.TrimSuffix(logger.TabularHeader, "\n")
	if got := len(strings.Split(header, ",")); got != 5 {
		t.Fatalf("header has %d columns, want 5", got)
	}
}

func TestSeverityNames(t *testing.T) {
	cases := []struct {
		severity logger.Severity
		name     string
		label    string
	}{
		{logger.Emergency, "emergency", "EMERGENCY"},
		{logger.Warning, "warning", "WARNING"},
		{logger.Debug, "debug", "DEBUG"},
	}
	for _, tc := range cases {
		if tc.severity.String() != tc.name {
			t.Fatalf("String(%d) = %q, want %q", int(tc.severity), tc.severity.String(), tc.name)
		}
		if tc.severity.Label() != tc.label {
			t.Fatalf("Label(%d) = %q, want %q", int(tc.severity), tc.severity.Label(), tc.label)
		}
	}

	parsed, err := logger.ParseSeverity(" Warning ")
	if err != nil || parsed != logger.Warning {
		t.Fatalf("ParseSeverity = (%v, %v), want Warning", parsed, err)
	}
	if _, err := logger.ParseSeverity("loud"); !errors.Is(err, logger.ErrConfig) {
		t.Fatalf("ParseSeverity(loud) error = %v, want ErrConfig", err)
	}
}
