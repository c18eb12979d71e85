// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params control where log lines go.
type Params struct {
	File     string // empty discards file output
	Level    string
	ToStdout bool // also write to stdout; never set while the TUI owns the terminal
	JSON     bool
}

// Setup installs the logger described by p. The returned closer releases the
// log file.
func Setup(p Params) (io.Closer, error) {
	if p.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	log.SetLevel(GetLevel(p.Level))

	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if p.File != "" {
		if err := os.MkdirAll(filepath.Dir(p.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   p.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			LocalTime:  true,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if p.ToStdout {
		writers = append(writers, os.Stdout)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(NewCombinedWriter(writers...))
	}
	return closer, nil
}

// GetLevel parses a level name. Unknown names fall back to info.
func GetLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// CombinedWriter fans each write out to every writer. A failing writer does
// not stop the others; all failures are returned together.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: append([]io.Writer(nil), writers...)}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
