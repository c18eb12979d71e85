package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestGetLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		" warn ":  log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"trace":   log.TraceLevel,
		"":        log.InfoLevel,
		"chatty":  log.InfoLevel,
	}
	for in, want := range cases {
		if got := GetLevel(in); got != want {
			t.Errorf("GetLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCombinedWriter_WritesEverywhere(t *testing.T) {
	var a, b bytes.Buffer
	cw := NewCombinedWriter(&a, &b)

	n, err := cw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = %d, %v, want 5, nil", n, err)
	}
	if a.String() != "hello" || b.String() != "hello" {
		t.Fatalf("buffers = %q, %q", a.String(), b.String())
	}
}

func TestCombinedWriter_CollectsErrors(t *testing.T) {
	var ok bytes.Buffer
	errA := errors.New("disk full")
	errB := errors.New("closed pipe")
	cw := NewCombinedWriter(failingWriter{errA}, &ok, failingWriter{errB})

	_, err := cw.Write([]byte("x"))
	if err == nil {
		t.Fatal("Write returned nil error")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("len(Errors) = %d, want 2", got)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("err = %v, want both failures", err)
	}
	if ok.String() != "x" {
		t.Fatalf("healthy writer got %q, want x", ok.String())
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "fitjourney.log")
	closer, err := Setup(Params{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Debug("debug line")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "debug line") {
		t.Fatalf("log file = %q, want debug line", data)
	}
}

func TestSetup_JSONFormat(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	path := filepath.Join(t.TempDir(), "fitjourney.log")
	closer, err := Setup(Params{File: path, Level: "info", JSON: true})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.WithField("kind", "weight").Info("logged")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line %q is not JSON: %v", data, err)
	}
	if entry["msg"] != "logged" || entry["kind"] != "weight" {
		t.Fatalf("entry = %v, want msg=logged kind=weight", entry)
	}
}
