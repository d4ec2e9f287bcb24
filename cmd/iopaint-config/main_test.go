package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"a.json", "b.json"}},
		{"unknown flag", []string{"-x", "a.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 2 {
				t.Errorf("run() = %d, want 2", code)
			}
			if !strings.Contains(stderr.String(), "iopaint-config <config.json>") {
				t.Errorf("stderr = %q, want usage", stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

func TestSessionLogger_Discard(t *testing.T) {
	t.Setenv("IOPAINT_CONFIG_LOG", "")

	logger, closeLog, err := sessionLogger()
	if err != nil {
		t.Fatalf("sessionLogger() error = %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestSessionLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	t.Setenv("IOPAINT_CONFIG_LOG", path)

	logger, closeLog, err := sessionLogger()
	if err != nil {
		t.Fatalf("sessionLogger() error = %v", err)
	}
	logger.Info("saved", "path", "/tmp/config.json")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=saved") {
		t.Errorf("log = %q, want the session entry", data)
	}
}

func TestSessionLogger_BadPath(t *testing.T) {
	t.Setenv("IOPAINT_CONFIG_LOG", filepath.Join(t.TempDir(), "missing", "session.log"))

	if _, _, err := sessionLogger(); err == nil {
		t.Error("sessionLogger() error = nil, want an error for a missing directory")
	}
}
