package utils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const tracePrefix = "[life] "

// NewTracer builds the grid tracer described by the config. When tracing is
// off the logger discards everything. The returned closer releases the trace
// file, if one was opened.
func NewTracer(config Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if !config.Trace {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	if config.TraceFile == "" {
		return log.New(fallback, tracePrefix, log.Ltime|log.Lmicroseconds), nopCloser{}, nil
	}

	f, err := os.OpenFile(config.TraceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewTracer] failed to open trace file: %+v", config.TraceFile)
	}
	return log.New(f, tracePrefix, log.Ltime|log.Lmicroseconds), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
