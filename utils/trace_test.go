package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTracerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewTracer(DefaultConfig(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Printf("gen %d", 1)
	if buf.Len() != 0 || logger.Writer() != io.Discard {
		t.Fatal("disabled tracer produced output")
	}
}

func TestNewTracerFallback(t *testing.T) {
	config := DefaultConfig()
	config.Trace = true

	var buf bytes.Buffer
	logger, closer, err := NewTracer(config, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Printf("gen %d: %d born", 3, 2)
	if out := buf.String(); !strings.Contains(out, tracePrefix) || !strings.Contains(out, "gen 3: 2 born") {
		t.Fatalf("trace output %q", out)
	}
}

func TestNewTracerFile(t *testing.T) {
	config := DefaultConfig()
	config.Trace = true
	config.TraceFile = filepath.Join(t.TempDir(), "trace.log")

	var buf bytes.Buffer
	logger, closer, err := NewTracer(config, &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("restart at generation %d", 7)
	if err = closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(config.TraceFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "restart at generation 7") || buf.Len() != 0 {
		t.Fatalf("file=%q fallback=%q", data, buf.String())
	}
}

func TestNewTracerBadFile(t *testing.T) {
	config := DefaultConfig()
	config.Trace = true
	config.TraceFile = filepath.Join(t.TempDir(), "missing", "trace.log")

	if _, _, err := NewTracer(config, io.Discard); err == nil {
		t.Fatal("NewTracer opened a file in a missing directory")
	}
}
